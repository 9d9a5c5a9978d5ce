// Package validate checks run options and import job specifications for
// semantic consistency before a pipeline is allowed to run.
//
// Two independent validators are provided. ValidateOptions checks the
// connection settings and the job spec location. ValidateJobSpec walks a
// parsed job spec and checks its sources, targets (node, edge and custom
// query), the cardinality of every mapped property and its actions.
//
// Both validators report every problem they find instead of stopping at
// the first one, so a spec can be fixed in one pass. Rule violations are
// returned as messages; only a target type the validator does not know is
// returned as an error. Action types outside the known set carry no
// required options and are only logged.
//
// Mappings of one target are grouped by property name across fragments:
// every group must be fed by a single source field and a single type.
//
// Validation is a pure function of its input apart from logging, with no
// shared state, so it is safe to call concurrently on distinct inputs.
package validate

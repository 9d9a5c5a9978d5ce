// Package diagnostic collects the problems found while validating run
// options and job specifications.
//
// Every problem carries a stable code for programmatic checks and a
// human-readable message that names the offending source, target, action
// or property. Callers that only need the plain list use Messages.
package diagnostic

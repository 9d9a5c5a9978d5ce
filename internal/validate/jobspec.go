package validate

import (
	"fmt"
	"strings"

	"jobspec-validator/internal/common"
	"jobspec-validator/internal/diagnostic"
	"jobspec-validator/internal/jobspec"
	"jobspec-validator/internal/logger"
)

// ValidateJobSpec checks spec and returns every problem found, in the
// order sources, targets and actions are declared. An empty result means
// the spec can be run.
//
// The returned error is non-nil only when spec holds a target type this
// validator does not know; no messages are returned then.
func ValidateJobSpec(spec *jobspec.JobSpec) ([]string, error) {
	res, err := CheckJobSpec(spec)
	if err != nil {
		return nil, err
	}

	return res.Messages(), nil
}

// CheckJobSpec is ValidateJobSpec with structured diagnostics.
func CheckJobSpec(spec *jobspec.JobSpec) (*diagnostic.Diagnostics, error) {
	res := &diagnostic.Diagnostics{}
	if spec == nil {
		res.AddError(CodeSpecIsNil, "job spec is nil", "")
		return res, nil
	}

	validateSources(res, spec.Sources)

	err := validateTargets(res, spec)
	if err != nil {
		return nil, err
	}

	validateActions(res, spec.Actions)

	return res, nil
}

func validateSources(res *diagnostic.Diagnostics, sources []jobspec.Source) {
	var seen common.OrderedSet[string]

	for i := range sources {
		src := &sources[i]

		if isBlank(src.Name) {
			res.AddError(CodeUnnamedSource, "Source is not named", "")
		}

		if !seen.Add(src.Name) {
			res.AddError(CodeDuplicateSource, "Duplicate source name: "+src.Name, src.Name)
		}

		if !isBlank(src.Query) {
			logger.Debugf("checking source %q for ORDER BY", src.Name)

			if containsOrderBy(src.Query) {
				res.AddError(CodeSourceOrderBy,
					fmt.Sprintf("Source %s SQL contains ORDER BY which is not supported", src.Name), src.Name)
			}
		}
	}
}

func validateTargets(res *diagnostic.Diagnostics, spec *jobspec.JobSpec) error {
	var (
		seen   common.OrderedSet[string]
		active bool
	)

	for i := range spec.Targets {
		t := &spec.Targets[i]
		if !t.IsActive() {
			continue
		}

		active = true

		if isBlank(t.Name) {
			res.AddError(CodeUnnamedTarget, "Targets must include a 'name' attribute.", "")
		}

		if !seen.Add(t.Name) {
			res.AddError(CodeDuplicateTarget, "Duplicate target name: "+t.Name, t.Name)
		}

		err := validateTarget(res, spec, t)
		if err != nil {
			return err
		}
	}

	if !active {
		res.AddError(CodeNoActiveTarget, "The job spec must define at least 1 active target, none found", "")
	}

	return nil
}

func validateActions(res *diagnostic.Diagnostics, actions []jobspec.Action) {
	if common.IsEmpty(actions) {
		return
	}

	var seen common.OrderedSet[string]

	for i := range actions {
		a := &actions[i]

		if isBlank(a.Name) {
			res.AddError(CodeUnnamedAction, "Action is not named", "")
		}

		if !seen.Add(a.Name) {
			res.AddError(CodeDuplicateAction, "Duplicate action name: "+a.Name, a.Name)
		}

		if !a.Type.IsValid() {
			logger.Warnf("action %s has type %q, no options checked", a.Name, a.Type)
			continue
		}

		var key, style string

		switch a.Type {
		case jobspec.ActionCypher:
			key, style = "cypher", "cypher"
		case jobspec.ActionHTTPGet, jobspec.ActionHTTPPost:
			key, style = "url", "http"
		case jobspec.ActionBigQuery:
			key, style = "sql", "query"
		}

		if !a.HasOption(key) {
			res.AddError(CodeMissingOption,
				fmt.Sprintf("Parameter '%s' is required for %s-style action: %s", key, style, a.Name), a.Name)
		}
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

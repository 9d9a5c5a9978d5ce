package validate

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"jobspec-validator/internal/diagnostic"
	"jobspec-validator/internal/jobspec"
	"jobspec-validator/internal/logger"
	"jobspec-validator/internal/suggest"
)

// validateTarget runs every per-target rule on an active target.
func validateTarget(res *diagnostic.Diagnostics, spec *jobspec.JobSpec, t *jobspec.Target) error {
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: %q (target %s)", ErrUnknownTargetType, t.Type, t.Name)
	}

	if isBlank(t.Source) {
		res.AddError(CodeMissingTargetSource,
			"Targets must include a 'source' attribute that maps to a 'source.name'.", t.Name)
	}

	if t.Source != "" && spec.SourceByName(t.Source) == nil {
		res.AddErrorWithSuggestions(CodeUnknownTargetSource, "Target source not defined: "+t.Source, t.Name,
			suggest.Closest(t.Source, sourceNames(spec)))
	}

	if t.Transform != nil && !isBlank(t.Transform.SQL) && containsOrderBy(t.Transform.SQL) {
		res.AddError(CodeTransformOrderBy,
			fmt.Sprintf("Target %s SQL contains ORDER BY which is not supported", t.Name), t.Name)
	}

	props := newPropertyMappings(t.Name)

	switch t.Type {
	case jobspec.TargetNode:
		validateNodeTarget(res, t, props)
	case jobspec.TargetEdge:
		validateEdgeTarget(res, t, props)
	case jobspec.TargetCustomQuery:
		validateCustomQueryTarget(res, t)
	}

	if t.Transform != nil {
		for _, agg := range t.Transform.Aggregations {
			if !fieldIsMapped(t, agg.Field) {
				res.AddErrorWithSuggestions(CodeUnmappedAggregation,
					fmt.Sprintf("Aggregation for field %s of target %s is unmapped.", agg.Field, t.Name), t.Name,
					suggest.Closest(agg.Field, mappedFields(t)))
			}
		}
	}

	for msg := range props.validate() {
		res.AddError(CodePropertyMapping, msg, t.Name)
	}

	return nil
}

func validateNodeTarget(res *diagnostic.Diagnostics, t *jobspec.Target, props *propertyMappings) {
	for _, m := range t.Mappings {
		if checkMappingKinds(res, t, m) && m.Fragment != jobspec.FragmentNode {
			res.AddError(CodeInvalidFragment,
				fmt.Sprintf("Invalid fragment type %s for node mapping: %s", m.Fragment, m.Name), t.Name)
		}

		props.add(m)
	}

	if isBlank(t.FirstFieldOrConstant(jobspec.FragmentNode, jobspec.RoleLabel)) {
		if logger.Enabled(logger.LevelDebug) {
			logger.Debugf("node target without label: %s", spew.Sdump(t))
		}

		res.AddError(CodeMissingLabel, "Missing label in node: "+t.Name, t.Name)
	}

	if isBlank(t.FirstFieldOrConstant(jobspec.FragmentNode, jobspec.RoleKey)) {
		res.AddError(CodeMissingKey, "Missing key field in node: "+t.Name, t.Name)
	}
}

func validateEdgeTarget(res *diagnostic.Diagnostics, t *jobspec.Target, props *propertyMappings) {
	for _, m := range t.Mappings {
		checkMappingKinds(res, t, m)

		if m.Fragment == jobspec.FragmentNode {
			res.AddError(CodeInvalidFragment,
				fmt.Sprintf("Invalid fragment type %s for relationship mapping: %s", m.Fragment, m.Name), t.Name)
		}

		if m.Role.IsValid() && (m.Fragment == jobspec.FragmentSource || m.Fragment == jobspec.FragmentTarget) {
			if m.Role != jobspec.RoleKey && m.Role != jobspec.RoleLabel {
				res.AddError(CodeInvalidRole,
					fmt.Sprintf("Invalid role %s on relationship %s: %s", m.Role, t.Name, m.Fragment), t.Name)
			}
		}

		props.add(m)
	}

	if isBlank(t.FirstFieldOrConstant(jobspec.FragmentSource, jobspec.RoleKey)) {
		res.AddError(CodeMissingSourceKey, "Could not find source key field for relationship: "+t.Name, t.Name)
	}

	if isBlank(t.FirstFieldOrConstant(jobspec.FragmentTarget, jobspec.RoleKey)) {
		res.AddError(CodeMissingTargetKey, "Could not find target key field for relationship: "+t.Name, t.Name)
	}

	if isBlank(t.FirstFieldOrConstant(jobspec.FragmentRel, jobspec.RoleRelType)) {
		res.AddError(CodeMissingRelType, "Could not find relationship type: "+t.Name, t.Name)
	}

	if t.SaveMode == jobspec.SaveMerge && t.EdgeNodesMatchMode == jobspec.EdgeNodesCreate {
		res.AddError(CodeIncompatibleSaveModes,
			"Edge target "+t.Name+" uses incompatible save modes:"+
				" either change the target's save mode to create or the edge node mode to match or merge",
			t.Name)
	}
}

// checkMappingKinds reports a role or fragment value outside the known
// variants. It returns false when the fragment is unknown.
func checkMappingKinds(res *diagnostic.Diagnostics, t *jobspec.Target, m jobspec.Mapping) bool {
	if !m.Role.IsValid() {
		res.AddError(CodeUnknownRole,
			fmt.Sprintf("Unknown role %s for mapping %s of target %s", m.Role, m.Name, t.Name), t.Name)
	}

	if !m.Fragment.IsValid() {
		res.AddError(CodeUnknownFragment,
			fmt.Sprintf("Unknown fragment type %s for mapping %s of target %s", m.Fragment, m.Name, t.Name), t.Name)

		return false
	}

	return true
}

// validateCustomQueryTarget checks a hand-written query target. Such
// targets bypass property and label/key checks.
func validateCustomQueryTarget(res *diagnostic.Diagnostics, t *jobspec.Target) {
	if isBlank(t.CustomQuery) {
		res.AddError(CodeMissingCustomQuery, "Custom target "+t.Name+" must define a query", t.Name)
	}

	if len(t.Mappings) > 0 {
		res.AddError(CodeCustomQueryMappings, "Custom target "+t.Name+" must not define any mapping", t.Name)
	}

	if !t.Transform.IsDefault() {
		res.AddError(CodeCustomQueryTransform, "Custom target "+t.Name+" must not define any transform", t.Name)
	}
}

func fieldIsMapped(t *jobspec.Target, field string) bool {
	if field == "" {
		return false
	}

	for _, m := range t.Mappings {
		if m.Field == field {
			return true
		}
	}

	return false
}

func sourceNames(spec *jobspec.JobSpec) []string {
	names := make([]string, 0, len(spec.Sources))
	for _, s := range spec.Sources {
		names = append(names, s.Name)
	}

	return names
}

func mappedFields(t *jobspec.Target) []string {
	fields := make([]string, 0, len(t.Mappings))
	for _, m := range t.Mappings {
		fields = append(fields, m.Field)
	}

	return fields
}

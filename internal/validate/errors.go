package validate

import "errors"

// ErrUnknownTargetType is returned for a target type outside node, edge
// and custom_query.
var ErrUnknownTargetType = errors.New("unknown target type")

// Diagnostic codes.
const (
	CodeSpecIsNil = "spec_is_nil"

	CodeMissingConnection     = "missing_connection"
	CodeConflictingConnection = "conflicting_connection"
	CodeInvalidSecretName     = "invalid_secret_name"
	CodeMissingSpecURI        = "missing_spec_uri"

	CodeUnnamedSource   = "unnamed_source"
	CodeDuplicateSource = "duplicate_source"
	CodeSourceOrderBy   = "source_order_by"

	CodeNoActiveTarget      = "no_active_target"
	CodeUnnamedTarget       = "unnamed_target"
	CodeDuplicateTarget     = "duplicate_target"
	CodeMissingTargetSource = "missing_target_source"
	CodeUnknownTargetSource = "unknown_target_source"
	CodeTransformOrderBy    = "transform_order_by"

	CodeUnknownFragment       = "unknown_fragment"
	CodeUnknownRole           = "unknown_role"
	CodeInvalidFragment       = "invalid_fragment"
	CodeInvalidRole           = "invalid_role"
	CodeMissingLabel          = "missing_label"
	CodeMissingKey            = "missing_key"
	CodeMissingSourceKey      = "missing_source_key"
	CodeMissingTargetKey      = "missing_target_key"
	CodeMissingRelType        = "missing_rel_type"
	CodeIncompatibleSaveModes = "incompatible_save_modes"

	CodeMissingCustomQuery   = "missing_custom_query"
	CodeCustomQueryMappings  = "custom_query_mappings"
	CodeCustomQueryTransform = "custom_query_transform"

	CodeUnmappedAggregation = "unmapped_aggregation"
	CodePropertyMapping     = "property_mapping_conflict"

	CodeUnnamedAction   = "unnamed_action"
	CodeDuplicateAction = "duplicate_action"
	CodeMissingOption   = "missing_action_option"
)

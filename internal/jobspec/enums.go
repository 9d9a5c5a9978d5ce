package jobspec

// TargetType is the kind of graph construct a target writes.
type TargetType string

const (
	TargetNode        TargetType = "node"
	TargetEdge        TargetType = "edge"
	TargetCustomQuery TargetType = "custom_query"
)

// IsValid returns true if the target type is a recognized value.
func (t TargetType) IsValid() bool {
	return t == TargetNode || t == TargetEdge || t == TargetCustomQuery
}

// FragmentType is the structural part of a node or relationship a mapping
// contributes to.
type FragmentType string

const (
	FragmentNode   FragmentType = "node"
	FragmentSource FragmentType = "source"
	FragmentTarget FragmentType = "target"
	FragmentRel    FragmentType = "rel"
)

// IsValid returns true if the fragment type is a recognized value.
func (f FragmentType) IsValid() bool {
	switch f {
	case FragmentNode, FragmentSource, FragmentTarget, FragmentRel:
		return true
	default:
		return false
	}
}

// RoleType is the semantic purpose of a mapped field.
type RoleType string

const (
	RoleKey      RoleType = "key"
	RoleProperty RoleType = "property"
	RoleLabel    RoleType = "label"
	RoleRelType  RoleType = "type"
)

// IsValid returns true if the role is a recognized value.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleKey, RoleProperty, RoleLabel, RoleRelType:
		return true
	default:
		return false
	}
}

// SaveMode controls how target data is persisted relative to existing data.
type SaveMode string

const (
	SaveAppend SaveMode = "append"
	SaveMerge  SaveMode = "merge"
	SaveCreate SaveMode = "create"
)

// EdgeNodesMatchMode controls how a relationship's endpoint nodes are resolved.
type EdgeNodesMatchMode string

const (
	EdgeNodesMatch  EdgeNodesMatchMode = "match"
	EdgeNodesMerge  EdgeNodesMatchMode = "merge"
	EdgeNodesCreate EdgeNodesMatchMode = "create"
)

// ActionType is the kind of side effect an action performs.
type ActionType string

const (
	ActionCypher   ActionType = "cypher"
	ActionHTTPGet  ActionType = "http_get"
	ActionHTTPPost ActionType = "http_post"
	ActionBigQuery ActionType = "bigquery"
)

// IsValid returns true if the action type is a recognized value.
func (a ActionType) IsValid() bool {
	switch a {
	case ActionCypher, ActionHTTPGet, ActionHTTPPost, ActionBigQuery:
		return true
	default:
		return false
	}
}

// PropertyType is the declared value type of a mapped property,
// e.g. "Integer", "String" or "DateTime". It is not interpreted here.
type PropertyType string

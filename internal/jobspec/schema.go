package jobspec

import (
	"slices"
	"strings"
)

// JobSpec represents the root of an import job specification.
type JobSpec struct {
	// Version of the job spec schema.
	Version string `yaml:"version,omitempty"`

	// Sources lists the data sources rows are read from.
	Sources []Source `yaml:"sources"`

	// Targets lists the graph constructs written from the sources.
	Targets []Target `yaml:"targets"`

	// Actions lists side effects run outside the main mapping flow.
	Actions []Action `yaml:"actions,omitempty"`
}

// Source is a named data source.
type Source struct {
	Name string `yaml:"name"`
	// Type of the source system (e.g. "bigquery", "text").
	Type string `yaml:"type,omitempty"`
	// Query is the optional extraction query.
	Query string `yaml:"query,omitempty"`
	// URI locates file-based sources.
	URI string `yaml:"uri,omitempty"`
}

// Target is a node, relationship or custom query populated from a source.
type Target struct {
	Name string `yaml:"name"`

	// Active is nil when the document leaves it out, which means active.
	Active *bool `yaml:"active,omitempty"`

	Type TargetType `yaml:"type"`

	// Source is the name of the Source feeding this target.
	Source string `yaml:"source,omitempty"`

	Mappings []Mapping `yaml:"mappings,omitempty"`

	Transform *Transform `yaml:"transform,omitempty"`

	SaveMode SaveMode `yaml:"save_mode,omitempty"`

	// EdgeNodesMatchMode applies to edge targets only.
	EdgeNodesMatchMode EdgeNodesMatchMode `yaml:"edge_nodes_match_mode,omitempty"`

	// CustomQuery applies to custom_query targets only.
	CustomQuery string `yaml:"query,omitempty"`
}

// Mapping binds a source field (or a constant) to a target property.
type Mapping struct {
	// Name of the target property, label or relationship type.
	Name     string       `yaml:"name"`
	Field    string       `yaml:"field,omitempty"`
	Constant string       `yaml:"constant,omitempty"`
	Type     PropertyType `yaml:"type,omitempty"`
	Role     RoleType     `yaml:"role,omitempty"`
	Fragment FragmentType `yaml:"fragment,omitempty"`

	Indexed   bool `yaml:"indexed,omitempty"`
	Unique    bool `yaml:"unique,omitempty"`
	Mandatory bool `yaml:"mandatory,omitempty"`
}

// Transform reshapes source rows before they are mapped.
type Transform struct {
	SQL          string        `yaml:"sql,omitempty"`
	Group        bool          `yaml:"group,omitempty"`
	Aggregations []Aggregation `yaml:"aggregations,omitempty"`
	OrderBy      string        `yaml:"order_by,omitempty"`
	Where        string        `yaml:"where,omitempty"`
	Limit        int           `yaml:"limit,omitempty"`
}

// Aggregation declares a field computed by a transform.
type Aggregation struct {
	Expr  string `yaml:"expr"`
	Field string `yaml:"field"`
}

// Action is a named side-effect operation.
type Action struct {
	Name string     `yaml:"name"`
	Type ActionType `yaml:"type"`

	// Source optionally binds the action to a source.
	Source string `yaml:"source,omitempty"`

	// ExecuteAfter names the kind of step (e.g. "loads", "nodes") after
	// which the action runs, ExecuteAfterName the specific step.
	ExecuteAfter     string `yaml:"execute_after,omitempty"`
	ExecuteAfterName string `yaml:"execute_after_name,omitempty"`

	// Options holds type-specific parameters such as "cypher", "url" or "sql".
	Options map[string]string `yaml:"options,omitempty"`
}

// SourceByName returns the source with the given name, or nil if the
// spec declares none.
func (j *JobSpec) SourceByName(name string) *Source {
	for i := range j.Sources {
		if j.Sources[i].Name == name {
			return &j.Sources[i]
		}
	}

	return nil
}

// IsActive returns false only when the target is explicitly deactivated.
func (t *Target) IsActive() bool {
	return t.Active == nil || *t.Active
}

// FirstFieldOrConstant returns the field of the first mapping with the
// given fragment type and one of the given roles, falling back to that
// mapping's constant. It returns "" when no mapping resolves.
func (t *Target) FirstFieldOrConstant(fragment FragmentType, roles ...RoleType) string {
	for _, m := range t.Mappings {
		if m.Fragment != fragment || !slices.Contains(roles, m.Role) {
			continue
		}

		if strings.TrimSpace(m.Field) != "" {
			return m.Field
		}

		if strings.TrimSpace(m.Constant) != "" {
			return m.Constant
		}
	}

	return ""
}

// HasOption reports whether the action declares the option key,
// whatever its value.
func (a *Action) HasOption(key string) bool {
	_, ok := a.Options[key]
	return ok
}

// IsDefault returns true when the transform does nothing. A nil transform
// is the default one.
func (t *Transform) IsDefault() bool {
	if t == nil {
		return true
	}

	return t.SQL == "" &&
		!t.Group &&
		len(t.Aggregations) == 0 &&
		t.OrderBy == "" &&
		t.Where == "" &&
		t.Limit <= 0
}

package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobspec-validator/internal/jobspec"
)

func TestNodeTarget_InvalidFragment(t *testing.T) {
	t.Parallel()

	msgs := validateDoc(t, `
sources:
  - name: s
targets:
  - name: Person
    type: node
    source: s
    mappings:
      - {name: Person, constant: Person, role: label}
      - {name: id, field: id, role: key}
      - {name: since, field: since, fragment: rel}
`)

	assert.Equal(t, []string{"Invalid fragment type rel for node mapping: since"}, msgs)
}

func TestNodeTarget_MissingLabelAndKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mappings string
		want     []string
	}{
		{
			name:     "no mappings",
			mappings: "[]",
			want:     []string{"Missing label in node: Person", "Missing key field in node: Person"},
		},
		{
			name:     "label only",
			mappings: "[{name: Person, constant: Person, role: label}]",
			want:     []string{"Missing key field in node: Person"},
		},
		{
			name:     "key from field",
			mappings: "[{name: Person, field: kind, role: label}, {name: id, field: id, role: key}]",
			want:     []string{},
		},
		{
			name:     "blank label",
			mappings: `[{name: Person, constant: " ", role: label}, {name: id, field: id, role: key}]`,
			want:     []string{"Missing label in node: Person"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := fmt.Sprintf(`
sources:
  - name: s
targets:
  - name: Person
    type: node
    source: s
    mappings: %s
`, tc.mappings)

			assert.Equal(t, tc.want, validateDoc(t, doc))
		})
	}
}

func TestNodeTarget_PropertyFanIn(t *testing.T) {
	t.Parallel()

	msgs := validateDoc(t, `
sources:
  - name: s
targets:
  - name: Person
    type: node
    source: s
    mappings:
      - {name: Person, constant: Person, role: label}
      - {name: id, field: id, role: key}
      - {name: age, field: age_years, role: property}
      - {name: age, field: age_days, role: property}
      - {name: age, field: age_years, role: property}
`)

	assert.Equal(t,
		[]string{"Property age of target Person is mapped to too many source fields: age_years, age_days"},
		msgs)
}

func TestNodeTarget_PropertyTypes(t *testing.T) {
	t.Parallel()

	msgs := validateDoc(t, `
sources:
  - name: s
targets:
  - name: Person
    type: node
    source: s
    mappings:
      - {name: Person, constant: Person, role: label}
      - {name: id, field: id, role: key, type: Integer}
      - {name: id, field: id, type: String}
`)

	assert.Equal(t,
		[]string{"Property id of target Person is mapped to too many types: Integer, String"},
		msgs)
}

func TestEdgeTarget_Rules(t *testing.T) {
	t.Parallel()

	msgs := validateDoc(t, `
sources:
  - name: s
targets:
  - name: Knows
    type: edge
    source: s
    mappings:
      - {name: Person, constant: Person, fragment: node, role: label}
      - {name: name, field: name, fragment: source, role: property}
      - {name: name, field: friend_name, fragment: target}
      - {name: since, field: since}
`)

	assert.Equal(t, []string{
		"Invalid fragment type node for relationship mapping: Person",
		"Invalid role property on relationship Knows: source",
		"Invalid role property on relationship Knows: target",
		"Could not find source key field for relationship: Knows",
		"Could not find target key field for relationship: Knows",
		"Could not find relationship type: Knows",
		"Property name of target Knows is mapped to too many source fields: name, friend_name",
	}, msgs)
}

func TestEdgeTarget_SaveModes(t *testing.T) {
	t.Parallel()

	saveModes := []jobspec.SaveMode{jobspec.SaveAppend, jobspec.SaveMerge, jobspec.SaveCreate}
	matchModes := []jobspec.EdgeNodesMatchMode{jobspec.EdgeNodesMatch, jobspec.EdgeNodesMerge, jobspec.EdgeNodesCreate}

	const conflict = "Edge target Knows uses incompatible save modes:" +
		" either change the target's save mode to create or the edge node mode to match or merge"

	for _, save := range saveModes {
		for _, match := range matchModes {
			t.Run(fmt.Sprintf("%s/%s", save, match), func(t *testing.T) {
				t.Parallel()

				doc := fmt.Sprintf(`
sources:
  - name: s
targets:
  - name: Knows
    type: edge
    source: s
    save_mode: %s
    edge_nodes_match_mode: %s
    mappings:
      - {name: KNOWS, constant: KNOWS, role: type}
      - {name: person_id, field: a, fragment: source, role: key}
      - {name: friend_id, field: b, fragment: target, role: key}
`, save, match)

				msgs := validateDoc(t, doc)
				if save == jobspec.SaveMerge && match == jobspec.EdgeNodesCreate {
					assert.Equal(t, []string{conflict}, msgs)
				} else {
					assert.Empty(t, msgs)
				}
			})
		}
	}
}

func TestEdgeTarget_PropertyFanIn(t *testing.T) {
	t.Parallel()

	msgs := validateDoc(t, `
sources:
  - name: s
targets:
  - name: Knows
    type: edge
    source: s
    mappings:
      - {name: KNOWS, constant: KNOWS, role: type}
      - {name: id, field: a, fragment: source, role: key}
      - {name: id, field: b, fragment: target, role: key}
      - {name: since, field: since}
      - {name: since, field: created_at}
`)

	assert.Equal(t, []string{
		"Property id of target Knows is mapped to too many source fields: a, b",
		"Property since of target Knows is mapped to too many source fields: since, created_at",
	}, msgs)
}

func TestCustomQueryTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		extra string
		want  []string
	}{
		{
			name:  "valid",
			extra: "    query: MATCH (n) RETURN n\n",
			want:  []string{},
		},
		{
			name:  "missing query",
			extra: "",
			want:  []string{"Custom target Q must define a query"},
		},
		{
			name: "with mapping",
			extra: "    query: MATCH (n) RETURN n\n" +
				"    mappings:\n      - {name: id, field: id}\n",
			want: []string{"Custom target Q must not define any mapping"},
		},
		{
			name: "with transform",
			extra: "    query: MATCH (n) RETURN n\n" +
				"    transform:\n      limit: 10\n",
			want: []string{"Custom target Q must not define any transform"},
		},
		{
			name: "default transform",
			extra: "    query: MATCH (n) RETURN n\n" +
				"    transform:\n      limit: -1\n",
			want: []string{},
		},
		{
			name: "everything wrong",
			extra: "    query: \"  \"\n" +
				"    mappings:\n      - {name: id, field: id}\n      - {name: id, field: other}\n" +
				"    transform:\n      where: id > 0\n",
			want: []string{
				"Custom target Q must define a query",
				"Custom target Q must not define any mapping",
				"Custom target Q must not define any transform",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := `
sources:
  - name: s
targets:
  - name: Q
    type: custom_query
    source: s
` + tc.extra

			assert.Equal(t, tc.want, validateDoc(t, doc))
		})
	}
}

func TestTarget_UnmappedAggregation(t *testing.T) {
	t.Parallel()

	msgs := validateDoc(t, `
sources:
  - name: s
targets:
  - name: Totals
    type: node
    source: s
    transform:
      group: true
      aggregations:
        - {expr: "count(*)", field: total}
        - {expr: "sum(amount)", field: amount_sum}
        - {expr: "max(x)", field: ""}
    mappings:
      - {name: Totals, constant: Totals, role: label}
      - {name: id, field: id, role: key}
      - {name: total, field: total}
`)

	assert.Equal(t, []string{
		"Aggregation for field amount_sum of target Totals is unmapped.",
		"Aggregation for field  of target Totals is unmapped.",
	}, msgs)
}

func TestTarget_IndependentRules(t *testing.T) {
	t.Parallel()

	msgs, err := ValidateJobSpec(&jobspec.JobSpec{
		Targets: []jobspec.Target{{
			Name:      "T",
			Type:      jobspec.TargetNode,
			Source:    "missing",
			Transform: &jobspec.Transform{SQL: "SELECT * FROM x ORDER BY y", Aggregations: []jobspec.Aggregation{{Field: "z"}}},
			Mappings: []jobspec.Mapping{
				{Name: "p", Field: "a", Fragment: jobspec.FragmentSource, Role: jobspec.RoleProperty},
				{Name: "p", Field: "b", Fragment: jobspec.FragmentNode, Role: jobspec.RoleProperty},
			},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Target source not defined: missing",
		"Target T SQL contains ORDER BY which is not supported",
		"Invalid fragment type source for node mapping: p",
		"Missing label in node: T",
		"Missing key field in node: T",
		"Aggregation for field z of target T is unmapped.",
		"Property p of target T is mapped to too many source fields: a, b",
	}, msgs)
}

func TestTarget_Suggestions(t *testing.T) {
	t.Parallel()

	res, err := CheckJobSpec(mustParse(t, `
sources:
  - name: people
  - name: orders
targets:
  - name: Person
    type: node
    source: peple
    transform:
      aggregations:
        - {expr: "count(*)", field: totl}
    mappings:
      - {name: Person, constant: Person, role: label}
      - {name: id, field: id, role: key}
      - {name: total, field: total}
`))
	require.NoError(t, err)
	require.Len(t, res.Errors, 2)

	assert.Equal(t, CodeUnknownTargetSource, res.Errors[0].Code)
	assert.Equal(t, []string{"people"}, res.Errors[0].Suggestions)

	assert.Equal(t, CodeUnmappedAggregation, res.Errors[1].Code)
	assert.Equal(t, "Aggregation for field totl of target Person is unmapped.", res.Errors[1].Message)
	assert.Equal(t, []string{"total"}, res.Errors[1].Suggestions)
}

func TestTarget_UnknownKinds(t *testing.T) {
	t.Parallel()

	res, err := CheckJobSpec(mustParse(t, `
sources:
  - name: s
targets:
  - name: Person
    type: node
    source: s
    mappings:
      - {name: Person, constant: Person, role: label}
      - {name: id, field: id, role: key}
      - {name: name, field: name, role: prop}
      - {name: age, field: age, fragment: nod}
  - name: Knows
    type: edge
    source: s
    mappings:
      - {name: KNOWS, constant: KNOWS, role: type}
      - {name: person_id, field: a, fragment: source, role: key}
      - {name: friend_id, field: b, fragment: target, role: keys}
      - {name: since, field: since, fragment: relationship}
`))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Unknown role prop for mapping name of target Person",
		"Unknown fragment type nod for mapping age of target Person",
		"Unknown role keys for mapping friend_id of target Knows",
		"Unknown fragment type relationship for mapping since of target Knows",
		"Could not find target key field for relationship: Knows",
	}, res.Messages())
	assert.Equal(t, CodeUnknownRole, res.Errors[0].Code)
	assert.Equal(t, CodeUnknownFragment, res.Errors[1].Code)
}

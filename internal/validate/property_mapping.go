package validate

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"jobspec-validator/internal/common"
	"jobspec-validator/internal/jobspec"
)

// propertyMapping collects every mapping that feeds one property of one
// target. A property must be fed by a single source field and declare at
// most one type.
type propertyMapping struct {
	targetName   string
	propertyName string
	sourceFields common.OrderedSet[string]
	types        common.OrderedSet[jobspec.PropertyType]
}

func newPropertyMapping(targetName, propertyName string) *propertyMapping {
	return &propertyMapping{targetName: targetName, propertyName: propertyName}
}

// add records the provenance of m. Only key and property roles carry a
// property value; labels and relationship types are ignored.
func (p *propertyMapping) add(m jobspec.Mapping) {
	if m.Role != jobspec.RoleKey && m.Role != jobspec.RoleProperty {
		return
	}

	p.sourceFields.Add(provenance(m))

	if m.Type != "" {
		p.types.Add(m.Type)
	}
}

// validate yields one message per violated cardinality rule.
func (p *propertyMapping) validate() iter.Seq[string] {
	return func(yield func(string) bool) {
		if common.IsMultiple(p.sourceFields.Values()) {
			msg := fmt.Sprintf("Property %s of target %s is mapped to too many source fields: %s",
				p.propertyName, p.targetName, strings.Join(p.sourceFields.Values(), ", "))
			if !yield(msg) {
				return
			}
		}

		if common.IsMultiple(p.types.Values()) {
			types := make([]string, 0, p.types.Len())
			for _, t := range p.types.Values() {
				types = append(types, string(t))
			}

			msg := fmt.Sprintf("Property %s of target %s is mapped to too many types: %s",
				p.propertyName, p.targetName, strings.Join(types, ", "))
			if !yield(msg) {
				return
			}
		}
	}
}

// provenance names where a mapped value comes from: its source field, or
// its quoted constant when the mapping has no field.
func provenance(m jobspec.Mapping) string {
	if m.Field == "" && m.Constant != "" {
		return strconv.Quote(m.Constant)
	}

	return m.Field
}

// propertyMappings is the per-target aggregator. Mappings are grouped by
// property name whatever their fragment, and groups are iterated in
// first-seen order.
type propertyMappings struct {
	targetName string
	names      common.OrderedSet[string]
	byName     map[string]*propertyMapping
}

func newPropertyMappings(targetName string) *propertyMappings {
	return &propertyMappings{targetName: targetName, byName: map[string]*propertyMapping{}}
}

func (ps *propertyMappings) add(m jobspec.Mapping) {
	pm, ok := ps.byName[m.Name]
	if !ok {
		pm = newPropertyMapping(ps.targetName, m.Name)
		ps.byName[m.Name] = pm
		ps.names.Add(m.Name)
	}

	pm.add(m)
}

func (ps *propertyMappings) validate() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range ps.names.Values() {
			for msg := range ps.byName[name].validate() {
				if !yield(msg) {
					return
				}
			}
		}
	}
}

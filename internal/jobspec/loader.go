package jobspec

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedLocation is returned when a job spec location uses a scheme
// other than a local path or file:// URI.
var ErrUnsupportedLocation = errors.New("unsupported job spec location")

const fileScheme = "file://"

// LoadFile loads and parses a job spec from a local path or file:// URI.
func LoadFile(location string) (*JobSpec, error) {
	path, err := localPath(location)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job spec %s: %w", location, err)
	}

	return Parse(data)
}

// Parse parses YAML or JSON data into a JobSpec and applies defaults.
func Parse(data []byte) (*JobSpec, error) {
	var spec JobSpec

	err := yaml.Unmarshal(data, &spec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job spec: %w", err)
	}

	applyDefaults(&spec)

	return &spec, nil
}

func localPath(location string) (string, error) {
	if strings.HasPrefix(location, fileScheme) {
		return strings.TrimPrefix(location, fileScheme), nil
	}

	if strings.Contains(location, "://") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocation, location)
	}

	return location, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(spec *JobSpec) {
	for i := range spec.Targets {
		t := &spec.Targets[i]

		if t.Type != TargetCustomQuery && t.SaveMode == "" {
			t.SaveMode = SaveAppend
		}

		if t.Type == TargetEdge && t.EdgeNodesMatchMode == "" {
			t.EdgeNodesMatchMode = EdgeNodesMatch
		}

		for j := range t.Mappings {
			m := &t.Mappings[j]
			if m.Role == "" {
				m.Role = RoleProperty
			}

			if m.Fragment == "" {
				m.Fragment = defaultFragment(t.Type)
			}
		}
	}
}

func defaultFragment(t TargetType) FragmentType {
	if t == TargetEdge {
		return FragmentRel
	}

	return FragmentNode
}

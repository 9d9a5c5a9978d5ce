package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"jobspec-validator/internal/diagnostic"
)

// ErrInvalid is returned by the validate command when any problem was
// found. The returned error wraps it together with every problem.
var ErrInvalid = errors.New("job spec is invalid")

// Output formats of the validate command.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Report is the combined result of one validation run.
type Report struct {
	RunID    string    `yaml:"run_id"`
	Spec     string    `yaml:"spec,omitempty"`
	Valid    bool      `yaml:"valid"`
	Problems []Problem `yaml:"problems"`
}

// Problem is one reported diagnostic.
type Problem struct {
	Code        string   `yaml:"code"`
	Message     string   `yaml:"message"`
	Scope       string   `yaml:"scope,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// NewReport starts an empty, valid report with a fresh run ID.
func NewReport(spec string) *Report {
	return &Report{
		RunID:    uuid.NewString(),
		Spec:     spec,
		Valid:    true,
		Problems: []Problem{},
	}
}

// Add appends the diagnostics in detection order.
func (r *Report) Add(d *diagnostic.Diagnostics) {
	for _, e := range d.Errors {
		r.Problems = append(r.Problems, Problem{
			Code:        e.Code,
			Message:     e.Message,
			Scope:       e.Scope,
			Suggestions: e.Suggestions,
		})
	}

	r.Valid = len(r.Problems) == 0
}

// Messages returns the plain problem messages.
func (r *Report) Messages() []string {
	msgs := make([]string, 0, len(r.Problems))
	for _, p := range r.Problems {
		msgs = append(msgs, p.Message)
	}

	return msgs
}

// Write renders the report in the given format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		return enc.Close()

	case OutputText, "":
		return r.writeText(w)

	default:
		return fmt.Errorf("unknown output format %q (expected %s or %s)", format, OutputText, OutputYAML)
	}
}

func (r *Report) writeText(w io.Writer) error {
	spec := r.Spec
	if spec == "" {
		spec = "<no job spec>"
	}

	if r.Valid {
		_, err := fmt.Fprintf(w, "run %s: %s is valid\n", r.RunID, spec)
		return err
	}

	if _, err := fmt.Fprintf(w, "run %s: %d problem(s) found in %s:\n", r.RunID, len(r.Problems), spec); err != nil {
		return err
	}

	for _, p := range r.Problems {
		line := "  - " + p.Message
		if len(p.Suggestions) > 0 {
			line += " (did you mean " + strings.Join(p.Suggestions, ", ") + "?)"
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

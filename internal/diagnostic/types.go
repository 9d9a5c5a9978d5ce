package diagnostic

import (
	"errors"
	"strings"
)

// Diagnostics holds all problems found by a validation pass, in the order
// they were detected.
type Diagnostics struct {
	Errors []Diagnostic
}

// Diagnostic represents a single validation problem.
type Diagnostic struct {
	// Code is a unique identifier for this kind of problem.
	Code string
	// Message is the human-readable description shown to operators.
	Message string
	// Scope names the source, target or action the problem relates to (if any).
	Scope string
	// Suggestions are likely intended names for a misspelled reference.
	Suggestions []string
}

// AddError records a problem.
func (d *Diagnostics) AddError(code, message, scope string) {
	d.Errors = append(d.Errors, Diagnostic{
		Code:    code,
		Message: message,
		Scope:   scope,
	})
}

// AddErrorWithSuggestions records a problem along with likely fixes.
func (d *Diagnostics) AddErrorWithSuggestions(code, message, scope string, suggestions []string) {
	d.Errors = append(d.Errors, Diagnostic{
		Code:        code,
		Message:     message,
		Scope:       scope,
		Suggestions: suggestions,
	})
}

// Merge appends the problems of other after the ones already recorded.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
}

// IsValid returns true if there are no problems.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Messages returns the plain problem messages in detection order.
// It never returns nil.
func (d *Diagnostics) Messages() []string {
	msgs := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		msgs = append(msgs, e.Message)
	}

	return msgs
}

// Codes returns the problem codes in detection order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

// Error returns a combined error from all problems, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = "[" + d.Code + "] " + msg
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if d.Scope != "" {
		return d.Scope + ": " + msg
	}

	return msg
}

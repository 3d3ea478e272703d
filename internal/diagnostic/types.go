package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Category groups diagnostics by the kind of violation.
	Category Category
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Slot is the mapping setting this relates to (empty for top-level keys).
	Slot string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

//go:generate go tool stringer -type=Category -trimprefix=Category -output=category_string.go

// Category is the kind of violation a diagnostic describes.
type Category int

const (
	CategoryFormat      Category = iota // value has the wrong JSON type
	CategoryMissing                     // required field absent
	CategoryUnknownName                 // string outside the closed vocabulary
	CategoryDuplicate                   // value repeated where it must be unique
	CategoryCapacity                    // too many values
	CategoryUnknownKey                  // key nobody consumed
)

// Reporter receives diagnostics as they are produced.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard is a Reporter that drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Tee returns a Reporter that forwards every diagnostic to all rs in order.
func Tee(rs ...Reporter) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		for _, r := range rs {
			r.Report(d)
		}
	})
}

// Diagnostics collects diagnostics in the order they were reported.
type Diagnostics struct {
	Items []Diagnostic
}

// Report implements Reporter.
func (d *Diagnostics) Report(diag Diagnostic) {
	d.Items = append(d.Items, diag)
}

// Len returns the number of collected diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Items)
}

// Errors returns the error-severity diagnostics in report order.
func (d *Diagnostics) Errors() []Diagnostic {
	return d.filter(SeverityError)
}

// Warnings returns the warning-severity diagnostics in report order.
func (d *Diagnostics) Warnings() []Diagnostic {
	return d.filter(SeverityWarning)
}

func (d *Diagnostics) filter(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.Items {
		if item.Severity == s {
			out = append(out, item)
		}
	}

	return out
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.Items {
		if item.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Messages returns the bare message of every diagnostic in report order.
func (d *Diagnostics) Messages() []string {
	out := make([]string, 0, len(d.Items))
	for _, item := range d.Items {
		out = append(out, item.Message)
	}

	return out
}

// Err returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Err() error {
	var parts []string
	for _, e := range d.Errors() {
		parts = append(parts, e.String())
	}

	if len(parts) == 0 {
		return nil
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Slot != "" {
		sb.WriteString("[" + d.Slot + "] ")
	}

	sb.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		quoted := make([]string, len(d.Suggestions))
		for i, s := range d.Suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}

		sb.WriteString(" (did you mean " + strings.Join(quoted, " or ") + "?)")
	}

	return sb.String()
}

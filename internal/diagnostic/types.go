package diagnostic

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Diagnostics holds every finding of a check, grouped by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier such as "unknown_field".
	Code    string
	Message string
	// Type is the bound type name, if any.
	Type string
	// Field is the field name within Type, if any.
	Field string
	// Suggestions are likely intended names.
	Suggestions []string
}

// Severity of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Add records a diagnostic of the given severity.
func (d *Diagnostics) Add(severity Severity, code, message, typ, field string, suggestions ...string) {
	diag := Diagnostic{
		Severity:    severity,
		Code:        code,
		Message:     message,
		Type:        typ,
		Field:       field,
		Suggestions: suggestions,
	}

	switch severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

func (d *Diagnostics) AddError(code, message, typ, field string, suggestions ...string) {
	d.Add(SeverityError, code, message, typ, field, suggestions...)
}

func (d *Diagnostics) AddWarning(code, message, typ, field string, suggestions ...string) {
	d.Add(SeverityWarning, code, message, typ, field, suggestions...)
}

func (d *Diagnostics) AddInfo(code, message, typ, field string, suggestions ...string) {
	d.Add(SeverityInfo, code, message, typ, field, suggestions...)
}

// Merge appends the findings of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

func (d *Diagnostics) HasErrors() bool { return len(d.Errors) > 0 }

// Len returns the number of findings of any severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every finding, errors first.
func (d *Diagnostics) All() []Diagnostic {
	return slices.Concat(d.Errors, d.Warnings, d.Infos)
}

// Codes returns the codes of all findings in the order of All.
func (d *Diagnostics) Codes() []string {
	all := d.All()

	codes := make([]string, len(all))
	for i, diag := range all {
		codes[i] = diag.Code
	}

	return codes
}

// Err joins the error findings, or returns nil when there are none.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, len(d.Errors))
	for i, diag := range d.Errors {
		errs[i] = errors.New(diag.String())
	}

	return errors.Join(errs...)
}

// Location returns "Type.Field", "Type", "Field" or "" depending on what is set.
func (d Diagnostic) Location() string {
	switch {
	case d.Type != "" && d.Field != "":
		return d.Type + "." + d.Field
	case d.Type != "":
		return d.Type
	default:
		return d.Field
	}
}

func (d Diagnostic) String() string {
	var b strings.Builder

	if loc := d.Location(); loc != "" {
		b.WriteString(loc)
		b.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	return b.String()
}

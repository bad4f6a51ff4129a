package model

import "strings"

// Record is the flat set of form fields for a contract or receipt, keyed by
// the canonical field name (ownerName, tenantDni, monthlyPrice, ...). Values
// are the raw strings captured from the form; typed interpretation happens in
// the validator and the renderer.
type Record map[string]string

// Get returns the trimmed value for a field, or "" when absent.
func (r Record) Get(name string) string {
	return strings.TrimSpace(r[name])
}

// Has reports whether the field is present and non-blank.
func (r Record) Has(name string) bool {
	return r.Get(name) != ""
}

// LineItem is a single receipt line: a free-text description, its amount and
// an optional display name derived from the description.
type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DisplayName string  `json:"display_name,omitempty"`
}

// ValidationReport maps field names to human-readable error messages. A field
// absent from the report is valid. A fresh report is built on every pass.
type ValidationReport map[string]string

// Valid reports whether the report contains no errors.
func (v ValidationReport) Valid() bool {
	return len(v) == 0
}

// Field display states derived from a validation report.
const (
	FieldStatusDefault = "default"
	FieldStatusError   = "error"
	FieldStatusSuccess = "success"
)

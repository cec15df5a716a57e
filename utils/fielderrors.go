// File: lojinha/utils/fielderrors.go
package utils

import (
	"sort"
	"strings"
)

// FieldErrors collects per-field validation messages, keyed by the
// request field name. It is returned as the "errors" object of 422
// responses.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// HasErrors reports whether any field failed validation.
func (fe FieldErrors) HasErrors() bool { return len(fe) > 0 }

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var parts []string
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(fe[f], "; "))
	}
	return strings.Join(parts, " | ")
}

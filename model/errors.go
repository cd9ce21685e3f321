package model

import (
	"sort"
	"strings"
)

// FieldErrors is a structured, field-scoped validation error returned by the
// listing collaborator. It merges into the same presentation path as local
// validation errors.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, k := range fields {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

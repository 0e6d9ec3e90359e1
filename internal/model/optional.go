package model

import "strings"

// NullIfBlank trims s and maps an empty result to nil, so optional text
// columns store NULL rather than "".
func NullIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// String returns a pointer to s, for filling optional inputs.
func String(s string) *string {
	return &s
}

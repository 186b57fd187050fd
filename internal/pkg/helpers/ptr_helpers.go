package helpers

import "strings"

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// DerefString returns the pointed-to value or "" for nil
func DerefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NormalizeOptional trims an optional text field and maps blank input to nil.
func NormalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// TrimmedOrNil returns nil for nil or blank input.
func TrimmedOrNil(ptr *string) *string {
	if ptr == nil {
		return nil
	}
	v := strings.TrimSpace(*ptr)
	if v == "" {
		return nil
	}
	return &v
}

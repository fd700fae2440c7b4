package utils

import (
	"strconv"
	"strings"
)

// ToInt parses a loose query-string integer. Blank or malformed input yields fallback.
func ToInt(val string, fallback int) int {
	val = strings.TrimSpace(val)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return i
}

// ToBool reports whether val spells true ("1", "true", "yes", any case).
func ToBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// OptionalBool turns a query-string flag into a tri-state filter.
// A missing value returns nil so the caller applies no filter.
func OptionalBool(val string) *bool {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	b := ToBool(val)
	return &b
}

// OptionalInt is OptionalBool for integers; malformed input also means no filter.
func OptionalInt(val string) *int {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &i
}

// StringOr returns the trimmed value, or fallback when it is blank.
func StringOr(val, fallback string) string {
	if v := strings.TrimSpace(val); v != "" {
		return v
	}
	return fallback
}

// PtrOr dereferences p, or returns fallback when p is nil.
func PtrOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// NilIfBlank trims s and returns nil when nothing is left.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// CompactStrings trims every entry and drops the empty ones. It never returns nil.
func CompactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := strings.TrimSpace(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Package strings provides small string-slice helpers shared by the
// engines, mostly for person-identifier lists assembled from several
// registry lookups.
package strings

import "strings"

// DedupeAndTrim removes duplicates and empty values from a slice, trimming
// whitespace from each element. Order is preserved, so the current id stays
// ahead of historical ones in alias lists.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

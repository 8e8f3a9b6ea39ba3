package validation

import (
	"sort"
	"strings"
)

// RequiredFields checks a map of field name to value and returns the names of
// every field whose value is empty, sorted for stable error messages. The
// handlers report the full list at once rather than failing on the first.
func RequiredFields(fields map[string]string) []string {
	missing := make([]string, 0)
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Package directory holds the specialist search used by the directory
// page. The server returns the full record set; filtering happens on
// the client against that set, recomputed on every keystroke, so the
// matcher must be pure and cheap.
package directory

import (
	"strings"

	"tade-autism-centre/backend/models"
)

// Filter returns the specialists whose name, type or location contains
// the query, case-folded on both sides. An empty query returns the full
// set. Input order is preserved.
func Filter(specialists []models.Specialist, query string) []models.Specialist {
	q := strings.ToLower(query)
	if q == "" {
		return specialists
	}

	matched := make([]models.Specialist, 0, len(specialists))
	for _, s := range specialists {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Type), q) ||
			strings.Contains(strings.ToLower(s.Location), q) {
			matched = append(matched, s)
		}
	}
	return matched
}

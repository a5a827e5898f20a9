package vision

import (
	"strings"

	"travisco/models"
)

const (
	monumentNamePrefix = "Monument Name:"
	descriptionPrefix  = "Description:"
)

// Normalize scans the model's freeform reply line by line for the two
// fixed prefixes and extracts a structured record. Lines matching neither
// prefix are ignored; when a prefix matches more than once the last match
// wins. Never fails: unmatched prefixes leave the field empty, which the
// caller treats as a valid partial result rather than an error.
func Normalize(raw string) models.MonumentIdentification {
	var id models.MonumentIdentification
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, monumentNamePrefix) {
			id.MonumentName = strings.TrimSpace(strings.TrimPrefix(line, monumentNamePrefix))
		} else if strings.HasPrefix(line, descriptionPrefix) {
			id.Description = strings.TrimSpace(strings.TrimPrefix(line, descriptionPrefix))
		}
	}
	return id
}

package models

// MonumentIdentification is the structured record extracted from the
// model's freeform reply. Not persisted; fields stay empty when the reply
// contains no matching line.
type MonumentIdentification struct {
	MonumentName string `json:"monument_name"`
	Description  string `json:"description"`
}

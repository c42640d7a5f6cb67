package export

import (
	"encoding/json"
	"io"
)

// WriteJSON emits the full nested structure with two-space indentation.
// HTML escaping is off so Cyrillic and other non-ASCII text comes out
// literally.
func WriteJSON(w io.Writer, records []PatientRecord) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

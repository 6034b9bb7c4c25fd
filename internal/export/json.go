package export

import (
	"encoding/json"
	"io"
)

// JSONSaver writes rows as an indented JSON array.
type JSONSaver struct{}

func (JSONSaver) Extension() string   { return "json" }
func (JSONSaver) ContentType() string { return "application/json" }

func (JSONSaver) Write(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

package writers

import (
	"encoding/json"
	"io"

	"readstats-core/stats"
)

func init() { Register("json", WriteJSON) }

// WriteJSON writes the report as a single indented JSON object.
func WriteJSON(w io.Writer, s stats.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIStats(s))
}

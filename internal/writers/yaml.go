// internal/writers/yaml.go
package writers

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"readstats-core/stats"
	"readstats/pkg/api"
)

func init() { Register("yaml", WriteYAML) }

// WriteYAML writes the report as a FastqStats YAML document, two-space indented.
func WriteYAML(w io.Writer, s stats.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(api.DocumentV1{FastqStats: ToAPIStats(s)}); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}

package writers

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"readstats-core/stats"
)

func init() { Register("text", WriteText) }

const absent = "-"

// WriteText renders a human-readable two-column table.
func WriteText(w io.Writer, s stats.Summary) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})

	n50 := absent
	if s.N50 != nil {
		n50 = humanize.Comma(int64(*s.N50)) + " bp"
	}
	genome := absent
	if s.GenomeSize != nil {
		genome = humanize.SIWithDigits(float64(*s.GenomeSize), 2, "bp")
	}

	tw.AppendRows([]table.Row{
		{"Reads", humanize.Comma(int64(s.TotalReads))},
		{"Bases", humanize.Comma(int64(s.TotalBases))},
		{"N50", n50},
		{"Genome size (est.)", genome},
		{"Distinct k-mers", humanize.Comma(int64(s.UniqueKmers))},
		{"Distinct read lengths", humanize.Comma(int64(s.UniqueReadLengths))},
	})

	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}

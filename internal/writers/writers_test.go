package writers

import (
	"bytes"
	"io"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readstats-core/stats"
)

func fullSummary() stats.Summary {
	n50 := 1650
	genome := uint64(48502)
	return stats.Summary{
		TotalReads:        1200,
		TotalBases:        1834500,
		N50:               &n50,
		GenomeSize:        &genome,
		UniqueKmers:       97113,
		UniqueReadLengths: 412,
	}
}

func render(t *testing.T, format string, s stats.Summary) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(format, &buf, s))
	return buf.Bytes()
}

func TestReportGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, format := range []string{"yaml", "json"} {
		g.Assert(t, format+"_full", render(t, format, fullSummary()))
		g.Assert(t, format+"_empty", render(t, format, stats.Summary{}))
	}
}

func TestToAPIStatsCopiesPointers(t *testing.T) {
	s := fullSummary()
	v := ToAPIStats(s)
	*s.N50 = 1
	*s.GenomeSize = 1
	assert.Equal(t, 1650, *v.N50)
	assert.Equal(t, uint64(48502), *v.GenomeSize)
}

func TestTextReport(t *testing.T) {
	out := string(render(t, "text", fullSummary()))
	assert.Contains(t, out, "1,834,500")
	assert.Contains(t, out, "1,650 bp")
	assert.Contains(t, out, "48.5 kbp")
	assert.Contains(t, out, "97,113")

	empty := string(render(t, "text", stats.Summary{}))
	assert.Contains(t, empty, "N50")
	assert.NotContains(t, empty, " bp")
}

func TestUnknownFormatError(t *testing.T) {
	err := Write("nope-format", io.Discard, stats.Summary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
	assert.False(t, Known("nope-format"))
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"json", "text", "yaml"}, Formats())
}

func TestRegisterLastWins(t *testing.T) {
	defer Register("json", WriteJSON)

	Register("json", func(w io.Writer, _ stats.Summary) error {
		_, err := io.WriteString(w, "custom")
		return err
	})
	assert.Equal(t, "custom", string(render(t, "json", stats.Summary{})))
}

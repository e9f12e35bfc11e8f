package writers

import (
	"readstats-core/stats"
	"readstats/pkg/api"
)

// ToAPIStats converts a run summary to the stable wire schema (v1).
func ToAPIStats(s stats.Summary) api.StatsV1 {
	v := api.StatsV1{
		TotalReads:        s.TotalReads,
		TotalBases:        s.TotalBases,
		UniqueKmers:       s.UniqueKmers,
		UniqueReadLengths: s.UniqueReadLengths,
	}
	if s.N50 != nil {
		n := *s.N50
		v.N50 = &n
	}
	if s.GenomeSize != nil {
		g := *s.GenomeSize
		v.GenomeSize = &g
	}
	return v
}

// pkg/api/stats_v1.go
package api

// StatsV1 is the stable report schema for a read-statistics run.
// Keep fields, names, and types stable. Absent values encode as null.
type StatsV1 struct {
	TotalReads        uint64  `json:"total_reads" yaml:"total_reads"`
	TotalBases        uint64  `json:"total_bases" yaml:"total_bases"`
	N50               *int    `json:"n50" yaml:"n50"`
	GenomeSize        *uint64 `json:"genome_size" yaml:"genome_size"`
	UniqueKmers       int     `json:"unique_kmers" yaml:"unique_kmers"`
	UniqueReadLengths int     `json:"unique_read_lengths" yaml:"unique_read_lengths"`
}

// DocumentV1 is the YAML report layout: the stats under a FastqStats key.
type DocumentV1 struct {
	FastqStats StatsV1 `yaml:"FastqStats"`
}

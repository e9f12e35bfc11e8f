// Package config loads the k-mer heuristics from defaults, an optional
// YAML file and READSTATS_* environment variables.
package config

import (
	"readstats-core/kmer"
	"readstats-core/stats"
)

// Defaults mirror stats.DefaultParams.
const (
	DefaultKmerLength          = kmer.DefaultK
	DefaultMinValidDepth       = 10
	DefaultSamplingInterval    = 5
	DefaultErrorCountThreshold = 5
	DefaultInitialCapacity     = 10_000_000
)

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Kmer KmerConfig `mapstructure:"kmer"`
}

// KmerConfig holds the genome-size estimator heuristics.
type KmerConfig struct {
	Length              int    `mapstructure:"length"`
	MinValidDepth       uint64 `mapstructure:"min_valid_depth"`
	SamplingInterval    int    `mapstructure:"sampling_interval"`
	ErrorCountThreshold uint64 `mapstructure:"error_count_threshold"`
	InitialCapacity     int    `mapstructure:"initial_capacity"`
}

// Params converts the config into engine parameters.
func (c *Config) Params() stats.Params {
	return stats.Params{
		KmerLength:          c.Kmer.Length,
		MinValidDepth:       c.Kmer.MinValidDepth,
		SamplingInterval:    c.Kmer.SamplingInterval,
		ErrorCountThreshold: c.Kmer.ErrorCountThreshold,
		InitialKmerCapacity: c.Kmer.InitialCapacity,
	}
}

// Validate checks the config against the engine's constraints.
func (c *Config) Validate() error {
	return c.Params().Validate()
}

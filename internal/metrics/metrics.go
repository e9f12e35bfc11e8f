// Package metrics exports a finished run as Prometheus gauges, written in
// the node-exporter textfile collector format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"readstats-core/stats"
)

const namespace = "readstats"

type gauge struct {
	name, help string
	v          float64
}

// Collect builds a fresh registry holding one gauge per summary field.
// The genome size gauge is omitted when the estimate is absent.
func Collect(s stats.Summary, elapsed time.Duration, labels prometheus.Labels) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	add := func(name, help string, v float64) error {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
		g.Set(v)
		return reg.Register(g)
	}

	gauges := []gauge{
		{"reads", "Reads ingested.", float64(s.TotalReads)},
		{"bases", "Bases ingested.", float64(s.TotalBases)},
		{"unique_kmers", "Distinct canonical k-mers after error filtering.", float64(s.UniqueKmers)},
		{"unique_read_lengths", "Distinct read lengths.", float64(s.UniqueReadLengths)},
		{"ingest_duration_seconds", "Wall time spent reading and hashing input.", elapsed.Seconds()},
	}
	if s.N50 != nil {
		gauges = append(gauges, gauge{"n50_bases", "Read length N50.", float64(*s.N50)})
	}
	if s.GenomeSize != nil {
		gauges = append(gauges, gauge{"genome_size_bases", "Estimated genome size from k-mer depth.", float64(*s.GenomeSize)})
	}

	for _, g := range gauges {
		if err := add(g.name, g.help, g.v); err != nil {
			return nil, fmt.Errorf("register %s_%s: %w", namespace, g.name, err)
		}
	}
	return reg, nil
}

// WriteTextfile writes the run's gauges to path atomically.
func WriteTextfile(path string, s stats.Summary, elapsed time.Duration, labels prometheus.Labels) error {
	reg, err := Collect(s, elapsed, labels)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}

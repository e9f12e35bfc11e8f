// internal/pipeline/ingester.go
package pipeline

import "readstats-core/stats"

// Ingester is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Ingester interface {
	Ingest(seq []byte) error
	Finalize() (stats.Summary, error)
}

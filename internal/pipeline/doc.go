// Package pipeline streams records from one input through an Ingester
// and finalizes it once the input is exhausted.
//
// The only contract to implement is Ingester (Ingest + Finalize).
// This keeps the pipeline swappable and testable.
package pipeline

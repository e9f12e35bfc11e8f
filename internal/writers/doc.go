// Package writers turns a finished run summary into a serialized report.
//
// Design:
//   • Writers own all presentation knowledge (YAML, JSON, text tables).
//   • The stats engine stays domain-only; the pipeline stays orchestration-only.
//   • YAML and JSON go through pkg/api (v1) for a stable wire format.
package writers

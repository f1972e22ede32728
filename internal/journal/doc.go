// Package journal is the application layer. It owns the entry lifecycle
// (create, list, update with unconditional sentiment recomputation), the
// calendar aggregation of entries into per-day sentiment labels, and the
// orchestration surface the presentation layer calls.
package journal

// Package dispatch runs independent per-file tasks across a bounded worker
// pool, preserving input order in the gathered results and isolating each
// task's failure from its siblings.
package dispatch

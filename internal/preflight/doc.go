// Package preflight verifies the environment before a run: external tool
// availability and free disk space for full sanitization.
package preflight

// Package main hosts the salmon CLI entrypoint and command graph.
//
// The Cobra-based command tree wires the integrity pipeline to the
// terminal: the check command drives discovery, verification, confirmation,
// and sanitization; deps reports on the external tool binaries; history
// surfaces recorded runs; config scaffolds and validates configuration.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main

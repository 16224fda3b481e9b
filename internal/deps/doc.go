// Package deps checks the availability of the external binaries salmon
// orchestrates.
package deps

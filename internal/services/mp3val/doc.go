// Package mp3val wraps the mp3val binary for MPEG stream validation and
// in-place container rebuilds.
package mp3val

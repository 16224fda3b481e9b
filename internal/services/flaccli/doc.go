// Package flaccli wraps the flac reference codec binary: bitstream testing,
// raw PCM decode hashing, and re-encoding.
package flaccli

// Package flacmeta reads and writes the audio MD5 signature stored in a
// FLAC file's STREAMINFO header.
package flacmeta

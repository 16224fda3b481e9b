// Package integrity checks bitstream-level integrity of audio files and
// repairs the ones that fail.
//
// The Verifier invokes format-specific external tools (flac for FLAC,
// mp3val for MP3) plus an independent MD5 cross-check for FLAC, and folds
// their output into per-file outcomes. The Sanitizer applies the repair
// procedure for the detected corruption: a checksum-only rewrite, a full
// re-encode with metadata normalization, or an MP3 container rebuild. The
// Checker orchestrates discovery, concurrent checking, user confirmation,
// and concurrent sanitization, aggregating everything into a Report.
//
// Every per-file failure is contained within that file's task; nothing a
// single file does can abort the processing of its siblings.
package integrity

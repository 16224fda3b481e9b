// Package audio models discovered audio files and their format tags.
package audio

package textutil

import "strings"

// diagnosticMarkers are the substrings that make a verifier output line worth
// surfacing. Matching is case-sensitive.
var diagnosticMarkers = []string{
	"error code",
	"ERROR",
	"FLAC__STREAM_DECODER_ERROR",
	"state =",
	"MD5 mismatch",
	"failed",
	"WARNING",
}

// UnspecifiedFlacError is returned when verifier output signalled a problem
// but no individual line matched a known marker.
const UnspecifiedFlacError = "Unspecified FLAC integrity error"

// ImportantLines reduces raw verifier output to the diagnostically relevant
// lines, in input order. Lines are stripped of any leading "<name>.flac: "
// file prefix and trimmed. When nothing matches, a single sentinel line is
// returned so a known failure never surfaces as an empty message.
func ImportantLines(raw string) []string {
	var important []string
	for _, line := range strings.Split(raw, "\n") {
		if !containsMarker(line) {
			continue
		}
		if idx := strings.Index(line, ".flac: "); idx >= 0 && strings.Contains(line, ": ") {
			line = line[idx+len(".flac: "):]
		}
		important = append(important, strings.TrimSpace(line))
	}
	if len(important) == 0 {
		return []string{UnspecifiedFlacError}
	}
	return important
}

func containsMarker(line string) bool {
	for _, marker := range diagnosticMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

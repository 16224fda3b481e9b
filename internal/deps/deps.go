package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/digerati-red/dev-smoked-salmon/internal/config"
)

// Requirement defines an external binary salmon relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Default returns the requirements for the configured tool binaries.
func Default(tools config.Tools) []Requirement {
	return []Requirement{
		{Name: "flac", Command: tools.Flac, Description: "FLAC bitstream testing, decoding, and re-encoding"},
		{Name: "metaflac", Command: tools.Metaflac, Description: "FLAC metadata block editing"},
		{Name: "mp3val", Command: tools.MP3Val, Description: "MP3 stream validation and container rebuild", Optional: true},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

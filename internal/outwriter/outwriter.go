// Package outwriter renders report results to the terminal or a file in the
// configured output format.
package outwriter

import (
	"os"

	"github.com/kwangc/repopulse/internal/contract"
	"golang.org/x/term"
)

// getMaxTablePathWidth calculates the maximum width for file paths in table
// output based on terminal width.
func getMaxTablePathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the rank, count and label columns plus table
	// borders, separators, and padding.
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

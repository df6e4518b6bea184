package contract

import (
	"os"

	"github.com/fatih/color"
)

// Churn intensity label constants.
const (
	HotValue  = "Hot"  // Changes concentrate here
	WarmValue = "Warm" // Regularly touched
	CoolValue = "Cool" // Rarely touched
)

// Color variables for console output.
var (
	HotColor  = color.New(color.FgRed, color.Bold)
	WarmColor = color.New(color.FgYellow)
	CoolColor = color.New(color.FgCyan)
)

// GetPlainChurnLabel returns a plain text intensity label for a file's change
// count. This is the core logic used for CSV, JSON, and table printing.
func GetPlainChurnLabel(changes int) string {
	switch {
	case changes >= 50:
		return HotValue
	case changes >= 10:
		return WarmValue
	default:
		return CoolValue
	}
}

// GetColorChurnLabel returns a colored intensity label for console output.
func GetColorChurnLabel(changes int) string {
	text := GetPlainChurnLabel(changes)

	switch text {
	case HotValue:
		return HotColor.Sprint(text)
	case WarmValue:
		return WarmColor.Sprint(text)
	default:
		return CoolColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is set.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is space for both the "..." prefix and at
// least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

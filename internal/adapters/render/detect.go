package render

import (
	"os"

	"go.trai.ch/anvil/internal/core/ports"
	"golang.org/x/term"
)

// Format selects the plan presentation.
type Format string

const (
	// FormatText is the human-readable renderer.
	FormatText Format = "text"
	// FormatJSON is the machine-readable renderer.
	FormatJSON Format = "json"
)

// DetectFormat returns the recommended format based on the environment:
// text for interactive terminals, JSON when stdout is piped into tooling or
// a CI environment is detected.
func DetectFormat() Format {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatText
}

// ResolveFormat applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "text", "json", or empty.
func ResolveFormat(userFlag string) Format {
	switch userFlag {
	case "text":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return DetectFormat()
	}
}

// ForFormat returns the renderer implementation for a format.
func ForFormat(f Format) ports.Renderer {
	if f == FormatJSON {
		return NewJSONRenderer()
	}
	return NewTextRenderer()
}

// Package plotbridge loads chart traces and layout from JSON, sanitizes them
// for the plotly object model, and renders the resulting figure.
package plotbridge

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Mode selects what Render does with the figure.
type Mode string

const (
	// ModeShow writes a temporary HTML page and opens it in the browser.
	ModeShow Mode = "show"
	// ModeHTML writes a standalone HTML page to the output path.
	ModeHTML Mode = "html"
	// ModeJSON writes plotly figure JSON to the output path or stdout.
	ModeJSON Mode = "json"
	// ModePNG renders a static image to the output path.
	ModePNG Mode = "png"
	// ModeXLSX exports the trace data to a workbook at the output path.
	ModeXLSX Mode = "xlsx"
)

// Modes lists every valid mode.
var Modes = []Mode{ModeShow, ModeHTML, ModeJSON, ModePNG, ModeXLSX}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %s (must be show, html, json, png, or xlsx)", ErrInvalidMode, s)
}

// NeedsOutput reports whether the mode requires an output path.
func (m Mode) NeedsOutput() bool {
	return m == ModeHTML || m == ModePNG || m == ModeXLSX
}

// Options configures rendering.
type Options struct {
	// Mode specifies what to do with the figure.
	Mode Mode
	// OutputPath is the file written by html, png and xlsx modes, and
	// optionally by json mode.
	OutputPath string
	// Pretty indents JSON output.
	Pretty bool
	// ShowDir is where show mode writes its page. Defaults to os.TempDir().
	ShowDir string
	// Stdout receives JSON output when OutputPath is empty.
	Stdout io.Writer
	// Logger receives progress logs.
	Logger zerolog.Logger
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeShow,
		Stdout: os.Stdout,
		Logger: zerolog.Nop(),
	}
}

package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Presentation selects how results are shown.
type Presentation int

const (
	// PresentPlain prints tables to the command's output.
	PresentPlain Presentation = iota
	// PresentTUI runs the Bubble Tea interface.
	PresentTUI
	// PresentJSON writes one JSON document per result.
	PresentJSON
)

// String returns the presentation name.
func (p Presentation) String() string {
	switch p {
	case PresentTUI:
		return "tui"
	case PresentJSON:
		return "json"
	default:
		return "plain"
	}
}

// DetectPresentation picks JSON when asked for, the TUI when w is a
// terminal and plain tables otherwise.
func DetectPresentation(w io.Writer, asJSON bool) Presentation {
	switch {
	case asJSON:
		return PresentJSON
	case IsTTY(w):
		return PresentTUI
	default:
		return PresentPlain
	}
}

// NewUI builds the UI for p, writing to the command's output.
func NewUI(cmd *cobra.Command, p Presentation) UI {
	switch p {
	case PresentTUI:
		return NewTUI(cmd.OutOrStdout())
	case PresentJSON:
		return NewJSONUI(cmd.OutOrStdout())
	default:
		return NewSimpleUI(cmd)
	}
}

// IsTTY reports whether w is a character device. Pipes, regular files and
// in-memory writers are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

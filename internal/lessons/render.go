package lessons

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderOptions controls how notes are rendered.
type RenderOptions struct {
	Style    string // glamour standard style: dark, light, notty; empty = auto
	WordWrap int
	Plain    bool // return the markdown untouched
}

// Render turns markdown notes into terminal output.
func Render(notes string, opts RenderOptions) (string, error) {
	if opts.Plain {
		return notes, nil
	}

	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 80
	}

	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" {
		styleOpt = glamour.WithStylePath(opts.Style)
	}

	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(notes)
	if err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}
	return out, nil
}

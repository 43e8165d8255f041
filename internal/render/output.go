package render

import (
	"fmt"
	"io"

	"github.com/opencode-ai/glasstheme/internal/convert"
)

// Options controls what Write emits besides the stylesheet.
type Options struct {
	Tailwind bool
}

// Document renders the full output: the stylesheet and, if requested, a blank
// line followed by the Tailwind fragment.
func Document(theme *convert.Theme, opts Options) (string, error) {
	out := CSS(theme) + "\n"
	if opts.Tailwind {
		fragment, err := Tailwind(theme.Name)
		if err != nil {
			return "", err
		}
		out += "\n" + fragment
	}
	return out, nil
}

// Write renders the document to w.
func Write(w io.Writer, theme *convert.Theme, opts Options) error {
	doc, err := Document(theme, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, doc); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}

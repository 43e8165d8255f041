package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const swatchWidth = 8

// Styles contains lipgloss styles for the preview chrome.
type Styles struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
}

// DefaultStyles builds the preview chrome styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("#E6EDF3")).Bold(true),
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7")),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("#E6EDF3")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#8B9AAE")),
	}
}

// SwatchStyle returns the block style for a colour swatch.
func SwatchStyle(swatch Swatch) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(swatch.Fill)).
		Foreground(lipgloss.Color(swatch.Ink)).
		Width(swatchWidth).
		Align(lipgloss.Center)
}

// RenderSection renders a titled list of swatches, one per line.
func (s Styles) RenderSection(title string, swatches []Swatch) string {
	keyWidth := 0
	for _, swatch := range swatches {
		keyWidth = max(keyWidth, len(swatch.Key))
	}
	keyStyle := s.Key.Width(keyWidth + 2)

	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")
	for _, swatch := range swatches {
		block := strings.Repeat(" ", swatchWidth)
		if swatch.IsColor() {
			label := ""
			if swatch.Alpha < 1 {
				label = fmt.Sprintf("%d%%", int(swatch.Alpha*100+0.5))
			}
			block = SwatchStyle(swatch).Render(label)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			block, " ",
			keyStyle.Render(swatch.Key),
			s.Value.Render(swatch.Value),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

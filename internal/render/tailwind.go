package render

import (
	"fmt"
	"strings"
	"text/template"
)

// Alias maps a Tailwind theme variable onto a generated token.
type Alias struct {
	Key   string
	Token string
}

// TailwindAliases are the effect tokens exposed to Tailwind utilities.
var TailwindAliases = []Alias{
	{Key: "--color-glass-bg", Token: "--glass-bg"},
	{Key: "--color-glass-border", Token: "--glass-border"},
	{Key: "--color-glow-primary", Token: "--glow-primary"},
	{Key: "--color-glow-secondary", Token: "--glow-secondary"},
	{Key: "--blur-glass", Token: "--glass-blur"},
}

const tailwindTemplate = `/* Tailwind CSS v4 theme extension for {{.Name}} */

@theme {
{{- range .Aliases}}
  {{.Key}}: var({{.Token}});
{{- end}}
}
`

// Tailwind renders the @theme fragment for a theme name.
func Tailwind(name string) (string, error) {
	parsed, err := template.New("tailwind").Parse(tailwindTemplate)
	if err != nil {
		return "", fmt.Errorf("parse tailwind template: %w", err)
	}

	data := struct {
		Name    string
		Aliases []Alias
	}{
		Name:    commentText(name),
		Aliases: TailwindAliases,
	}

	var out strings.Builder
	if err := parsed.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render tailwind template: %w", err)
	}
	return out.String(), nil
}

package discrete

import (
	"github.com/opencode-ai/glasstheme/internal/color"
	"github.com/opencode-ai/glasstheme/internal/palette"
	"github.com/opencode-ai/glasstheme/internal/tokens"
)

// Role names one of the selected entries.
type Role int

const (
	RoleDarkest Role = iota
	RoleLightest
	RoleMid
	RolePrimary
	RoleSecondary
)

// Entry returns the entry selected for a role.
func (s Selection) Entry(role Role) palette.Entry {
	switch role {
	case RoleLightest:
		return s.Lightest
	case RoleMid:
		return s.Mid
	case RolePrimary:
		return s.Primary
	case RoleSecondary:
		return s.Secondary
	default:
		return s.Darkest
	}
}

type pick struct {
	role    Role
	opacity float64
}

type recipe struct {
	key   string
	dark  pick
	light pick
}

var recipes = []recipe{
	{"--glass-bg", pick{RoleDarkest, 0.3}, pick{RoleDarkest, 0.03}},
	{"--glass-bg-light", pick{RoleDarkest, 0.15}, pick{RoleLightest, 0.4}},
	{"--glass-bg-solid", pick{RoleDarkest, 0.6}, pick{RoleLightest, 0.8}},
	{"--glass-border", pick{RoleLightest, 0.1}, pick{RoleDarkest, 0.08}},
	{"--glass-border-hover", pick{RoleLightest, 0.2}, pick{RoleDarkest, 0.15}},
	{"--glass-highlight", pick{RoleLightest, 0.05}, pick{RoleLightest, 0.6}},
	{"--glow-primary", pick{RolePrimary, 0.4}, pick{RolePrimary, 0.25}},
	{"--glow-secondary", pick{RoleSecondary, 0.3}, pick{RoleSecondary, 0.2}},
	{"--text-primary", pick{RoleLightest, 0.95}, pick{RoleDarkest, 0.9}},
	{"--text-secondary", pick{RoleLightest, 0.7}, pick{RoleDarkest, 0.65}},
	{"--text-muted", pick{RoleMid, 0.8}, pick{RoleMid, 0.7}},
	{"--surface", pick{RoleDarkest, 0.85}, pick{RoleLightest, 0.9}},
	{"--surface-hover", pick{RoleMid, 0.12}, pick{RoleMid, 0.08}},
}

var blurs = []tokens.Entry{
	{Key: "--glass-blur", Value: tokens.Raw("16px")},
	{Key: "--glass-blur-light", Value: tokens.Raw("12px")},
	{Key: "--glass-blur-heavy", Value: tokens.Raw("20px")},
}

var accents = []string{"--accent", "--accent-ring"}

// Themes is the dark/light token pair produced for a discrete palette.
type Themes struct {
	Name      string
	Dark      *tokens.Set
	Light     *tokens.Set
	Selection Selection
}

// Build assembles both themes. Blended tokens use the selected entries' hex
// literals at a fixed per-theme opacity; accents use the anchor unblended.
func Build(name string, anchor color.RGBA, sel Selection) *Themes {
	dark := tokens.NewSet(name + "-dark")
	light := tokens.NewSet(name + "-light")

	for _, r := range recipes {
		dark.Put(r.key, tokens.Blend(sel.Entry(r.dark.role).Color(), r.dark.opacity))
		light.Put(r.key, tokens.Blend(sel.Entry(r.light.role).Color(), r.light.opacity))
	}
	for _, blur := range blurs {
		dark.Put(blur.Key, blur.Value)
		light.Put(blur.Key, blur.Value)
	}
	for _, key := range accents {
		dark.Put(key, tokens.Hex(anchor))
		light.Put(key, tokens.Hex(anchor))
	}

	return &Themes{
		Name:      name,
		Dark:      dark,
		Light:     light,
		Selection: sel,
	}
}

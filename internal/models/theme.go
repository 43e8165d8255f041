// Package models defines persisted glasstheme records.
package models

import (
	"strings"
	"time"
)

// ThemeKind mirrors the converter that produced a theme.
type ThemeKind string

const (
	ThemeKindRamp     ThemeKind = "anchor"
	ThemeKindDiscrete ThemeKind = "discrete"
	ThemeKindSeed     ThemeKind = "seed"
)

// ThemeRecord is a generated stylesheet kept in the history store.
type ThemeRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// Name is the palette name.
	Name string `json:"name"`

	// Kind is the converter used.
	Kind ThemeKind `json:"kind"`

	// Source is the palette file path, preset source or "stdin".
	Source string `json:"source,omitempty"`

	// Stylesheet is the exact output that was printed.
	Stylesheet string `json:"stylesheet"`

	// TokenCount is the number of tokens in the primary set.
	TokenCount int `json:"token_count"`

	// CreatedAt is when the theme was generated.
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks if the record is valid.
func (r *ThemeRecord) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(r.Name) == "" {
		validation.AddMessage("name", "name is required")
	}
	if strings.TrimSpace(string(r.Kind)) == "" {
		validation.AddMessage("kind", "kind is required")
	}
	if r.Stylesheet == "" {
		validation.AddMessage("stylesheet", "stylesheet is required")
	}
	return validation.Err()
}

// Package ui provides the TCO Compare desktop application.
//
// This file defines a compact Fyne theme for the dense comparison tables.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme wraps the default Fyne theme with tighter sizing so the
// comparison and breakdown tables fit without scrolling.
type CompactTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	forced  bool
}

// NewCompactTheme creates a CompactTheme that follows the system variant.
func NewCompactTheme() *CompactTheme {
	return &CompactTheme{base: theme.DefaultTheme()}
}

// ThemeForPreference maps the "system", "light" or "dark" preference stored
// in the app config to a theme.
func ThemeForPreference(pref string) *CompactTheme {
	t := NewCompactTheme()
	switch pref {
	case "light":
		t.SetVariant(theme.VariantLight)
	case "dark":
		t.SetVariant(theme.VariantDark)
	}
	return t
}

// SetVariant pins the theme to a light or dark variant.
func (t *CompactTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.forced = true
}

// Color delegates to the base theme, using the pinned variant if one is set.
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forced {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource { return t.base.Font(style) }

func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource { return t.base.Icon(name) }

// Size uses the compactSizes table and falls back to the base theme.
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if v, ok := compactSizes[name]; ok {
		return v
	}
	return t.base.Size(name)
}

// compactSizes keeps a nine column comparison table readable at 1280px.
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNameText:           12,
	theme.SizeNameCaptionText:    10,
	theme.SizeNameHeadingText:    19,
	theme.SizeNameSubHeadingText: 15,
	theme.SizeNamePadding:        3,
	theme.SizeNameInnerPadding:   5,
	theme.SizeNameInlineIcon:     16,
}

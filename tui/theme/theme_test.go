package theme

import "testing"

func TestNewThemeWithName(t *testing.T) {
	terminal := NewThemeWithName("terminal")
	if terminal.UseAlternatingRows {
		t.Error("terminal theme should not use alternating rows")
	}

	kanagawa := NewThemeWithName("kanagawa")
	if !kanagawa.UseAlternatingRows {
		t.Error("kanagawa theme should use alternating rows")
	}
}

func TestThemeAliases(t *testing.T) {
	if normalizeThemeName("ansi") != "terminal" {
		t.Error("expected 'ansi' to alias 'terminal'")
	}
	if normalizeThemeName("Kanagawa-Dragon") != "kanagawa" {
		t.Error("expected 'Kanagawa-Dragon' to alias 'kanagawa'")
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	th := NewThemeWithName("solarized")
	if th.Colors != newKanagawaColors() {
		t.Error("unknown theme should fall back to the default palette")
	}
}

func TestAccentColorsNonEmpty(t *testing.T) {
	if len(DefaultTheme.AccentColors) == 0 {
		t.Error("expected chart accent colors to be populated")
	}
}

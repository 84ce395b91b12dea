package config

import (
	"fmt"
	"log/slog"
)

// ThemeMode is the stored light/dark display preference.
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system" // follow the operating system variant
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

// IsDark resolves the mode to a concrete variant.
func (m ThemeMode) IsDark(systemDark bool) bool {
	switch m {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return systemDark
	}
}

// ThemePreferences persists the theme choice through injected hooks, so the
// storage backend (Fyne preferences, a file, memory in tests) is chosen by
// whoever builds it.
type ThemePreferences struct {
	load func() (string, error)
	save func(string) error
}

// NewThemePreferences wires the load and save hooks.
func NewThemePreferences(load func() (string, error), save func(string) error) *ThemePreferences {
	return &ThemePreferences{load: load, save: save}
}

// NewMemoryThemePreferences keeps the preference in memory only.
func NewMemoryThemePreferences(initial ThemeMode) *ThemePreferences {
	value := string(initial)
	return NewThemePreferences(
		func() (string, error) { return value, nil },
		func(v string) error { value = v; return nil },
	)
}

// Mode returns the stored mode. A missing, unknown or unreadable value falls
// back to ThemeSystem.
func (p *ThemePreferences) Mode() ThemeMode {
	if p.load == nil {
		return ThemeSystem
	}
	raw, err := p.load()
	if err != nil {
		slog.Warn(ErrThemeLoad, LogKeyComponent, CompPrefs, LogKeyError, err)
		return ThemeSystem
	}
	switch m := ThemeMode(raw); m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return m
	case "":
		return ThemeSystem
	default:
		slog.Debug(ErrThemeUnknown, LogKeyComponent, CompPrefs, LogKeyValue, raw)
		return ThemeSystem
	}
}

// SetMode stores m.
func (p *ThemePreferences) SetMode(m ThemeMode) error {
	if p.save == nil {
		return nil
	}
	if err := p.save(string(m)); err != nil {
		return fmt.Errorf("%s: %w", ErrThemeSave, err)
	}
	return nil
}

// Toggle flips the effective variant and stores the result explicitly, so a
// user who toggles away from the system default keeps that choice.
func (p *ThemePreferences) Toggle(systemDark bool) (ThemeMode, error) {
	next := ThemeDark
	if p.Mode().IsDark(systemDark) {
		next = ThemeLight
	}
	if err := p.SetMode(next); err != nil {
		return p.Mode(), err
	}
	return next, nil
}

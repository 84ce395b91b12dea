package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/tartampluch/go-age/internal/config"
)

// variantTheme pins the default theme to one variant regardless of the
// operating system setting.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// NewFynePreferenceHooks backs the theme preference with Fyne's preference store.
func NewFynePreferenceHooks(p fyne.Preferences) *config.ThemePreferences {
	return config.NewThemePreferences(
		func() (string, error) { return p.String(config.PrefTheme), nil },
		func(v string) error { p.SetString(config.PrefTheme, v); return nil },
	)
}

// systemDark reports whether the operating system asks for a dark variant.
func (app *AgeCalcApp) systemDark() bool {
	return app.App.Settings().ThemeVariant() == theme.VariantDark
}

// IsDark reports the variant currently applied.
func (app *AgeCalcApp) IsDark() bool {
	return app.Theme.Mode().IsDark(app.systemDark())
}

// ApplyTheme installs the theme matching the stored preference.
func (app *AgeCalcApp) ApplyTheme() {
	mode := app.Theme.Mode()
	if mode == config.ThemeSystem {
		app.App.Settings().SetTheme(theme.DefaultTheme())
		return
	}

	variant := theme.VariantLight
	if mode == config.ThemeDark {
		variant = theme.VariantDark
	}
	app.App.Settings().SetTheme(&variantTheme{Theme: theme.DefaultTheme(), variant: variant})
}

// ToggleTheme flips between light and dark and persists the choice.
func (app *AgeCalcApp) ToggleTheme() {
	mode, err := app.Theme.Toggle(app.systemDark())
	if err != nil {
		slog.Error(config.ErrThemeSave,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}

	slog.Info(config.MsgThemeChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyTheme, string(mode))
	app.ApplyTheme()
}

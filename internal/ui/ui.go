package ui

import (
	"errors"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-age/internal/catalog"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// AgeCalcApp encapsulates the UI state, preferences, and the widgets of the last render.
type AgeCalcApp struct {
	App     fyne.App
	Window  fyne.Window
	Theme   *config.ThemePreferences
	Catalog *catalog.Catalog

	Clock engine.Clock // Injected clock for testability
	State *FormState

	view *mainView
}

// NewAgeCalcApp constructs the application and wires dependencies.
// The theme preference is persisted through the Fyne preference store.
func NewAgeCalcApp(a fyne.App) *AgeCalcApp {
	return &AgeCalcApp{
		App:   a,
		Theme: NewFynePreferenceHooks(a.Preferences()),
		Clock: engine.RealClock{}, // Default to real clock in production
	}
}

// Run builds the main window and blocks in the Fyne event loop.
func (app *AgeCalcApp) Run() {
	app.SetupI18n()
	app.ApplyTheme()
	app.ShowMainWindow()
	app.App.Run()
}

// ShowMainWindow creates the calculator window and renders the initial state.
func (app *AgeCalcApp) ShowMainWindow() {
	if app.Window != nil {
		app.Window.RequestFocus()
		return
	}
	if app.State == nil {
		app.State = NewFormState(engine.Today(app.Clock))
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.SetMaster()
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetOnClosed(func() { app.Window = nil })
	app.Window = w

	app.Render()
	w.Show()
}

// Render rebuilds the whole window content from State.
func (app *AgeCalcApp) Render() {
	if app.Window == nil {
		return
	}
	app.view = app.buildView(app.State)
	app.Window.SetContent(app.view.root)
}

// -----------------------------------------------------------------------------
// Event handlers: mutate State, then re-render when the layout changes.
// -----------------------------------------------------------------------------

// Calculate validates the inputs, computes the breakdown and shows the outcome.
func (app *AgeCalcApp) Calculate() {
	log := slog.With(
		config.LogKeyComponent, config.CompUI,
		config.LogKeyBirth, app.State.Birth.String(),
		config.LogKeyTarget, app.State.Target.String(),
	)

	if err := app.State.Calculate(); err != nil {
		var dateErr *engine.DateError
		field := ""
		if errors.As(err, &dateErr) {
			field = dateErr.Field
		}
		log.Warn(config.MsgCalcRejected, config.LogKeyField, field, config.LogKeyError, err)
	} else {
		log.Info(config.MsgCalculated,
			config.LogKeyYears, app.State.Result.Years,
			config.LogKeyTotalDays, app.State.Result.TotalDays)
	}
	app.Render()
}

// Reset restores today as the target date and clears the outcome.
func (app *AgeCalcApp) Reset() {
	app.State.Reset(engine.Today(app.Clock))
	slog.Info(config.MsgStateReset, config.LogKeyComponent, config.CompUI)
	app.Render()
}

// setMonth re-renders because the day field may have been clamped.
func (app *AgeCalcApp) setMonth(f dateField, month time.Month) {
	app.State.SetMonth(f, month)
	app.Render()
}

// setDay and setYear store the entry text as typed, without re-rendering, so
// the form and State always agree. An impossible date is reported by Calculate.
func (app *AgeCalcApp) setDay(f dateField, day int) {
	app.State.SetDay(f, day)
}

func (app *AgeCalcApp) setYear(f dateField, year int) {
	app.State.SetYear(f, year)
}

// errorMessage maps a calculator failure to catalog text.
func (app *AgeCalcApp) errorMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrInvalidOrdering):
		return app.GetMsg(config.TKeyErrOrdering)
	case errors.Is(err, engine.ErrInvalidDate):
		field := config.FieldBirth
		var dateErr *engine.DateError
		if errors.As(err, &dateErr) {
			field = dateErr.Field
		}
		return app.GetTemplate(config.TKeyErrInvalidDate, map[string]interface{}{"Field": field})
	default:
		return err.Error()
	}
}

package ui

import (
	"github.com/tartampluch/go-age/internal/catalog"
)

// SetupI18n loads the embedded message catalog.
func (app *AgeCalcApp) SetupI18n() {
	app.Catalog = catalog.New()
}

// GetMsg is a helper to translate a key safely.
func (app *AgeCalcApp) GetMsg(key string) string {
	return app.Catalog.Msg(key)
}

// GetPlural translates a key that varies with count (e.g. "year"/"years").
func (app *AgeCalcApp) GetPlural(key string, count int) string {
	return app.Catalog.Plural(key, count)
}

// GetTemplate translates a key whose message references template fields.
func (app *AgeCalcApp) GetTemplate(key string, data map[string]interface{}) string {
	return app.Catalog.Template(key, data)
}

// FormatCount renders n with thousands separators ("8,400").
func (app *AgeCalcApp) FormatCount(n int64) string {
	return app.Catalog.FormatCount(n)
}

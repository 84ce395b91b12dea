// Package catalog holds the embedded message catalog shared by the window and
// the headless command line.
package catalog

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed locales/*.json
var localeFS embed.FS

// Catalog resolves translation keys and formats counts for one language.
// A zero Catalog is usable: every lookup returns the key itself.
type Catalog struct {
	localizer *i18n.Localizer
	printer   *message.Printer
}

// New loads every embedded active.<lang>.json file and returns a catalog
// for the default language.
func New() *Catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return &Catalog{printer: message.NewPrinter(language.English)}
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
		} else {
			slog.Debug(config.MsgLocaleLoaded,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyLang, langCode,
			)
		}
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, config.DefaultLanguage),
		printer:   message.NewPrinter(language.English),
	}
}

// Msg translates a key safely.
func (c *Catalog) Msg(key string) string {
	return c.localize(&i18n.LocalizeConfig{MessageID: key})
}

// Plural translates a key that varies with count (e.g. "year"/"years").
func (c *Catalog) Plural(key string, count int) string {
	return c.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]interface{}{"Count": count},
		PluralCount:  count,
	})
}

// Template translates a key whose message references template fields.
func (c *Catalog) Template(key string, data map[string]interface{}) string {
	return c.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

func (c *Catalog) localize(cfg *i18n.LocalizeConfig) string {
	if c == nil || c.localizer == nil {
		return cfg.MessageID
	}
	msg, err := c.localizer.Localize(cfg)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, cfg.MessageID,
			config.LogKeyError, err,
		)
		return cfg.MessageID
	}
	return msg
}

// Printer returns the number printer of the catalog language.
func (c *Catalog) Printer() *message.Printer {
	if c == nil || c.printer == nil {
		return message.NewPrinter(language.English)
	}
	return c.printer
}

// FormatCount renders n with thousands separators ("8,400").
func (c *Catalog) FormatCount(n int64) string {
	return c.Printer().Sprintf("%d", n)
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-age/internal/catalog"
	"github.com/tartampluch/go-age/internal/config"
)

func TestCatalog_Plural(t *testing.T) {
	cat := catalog.New()

	assert.Equal(t, "year", cat.Plural(config.TKeyUnitYear, 1))
	assert.Equal(t, "years", cat.Plural(config.TKeyUnitYear, 0))
	assert.Equal(t, "month", cat.Plural(config.TKeyUnitMonth, 1))
	assert.Equal(t, "months", cat.Plural(config.TKeyUnitMonth, 11))
	assert.Equal(t, "day", cat.Plural(config.TKeyUnitDay, 1))
	assert.Equal(t, "days", cat.Plural(config.TKeyUnitDay, 30))
}

func TestCatalog_Template(t *testing.T) {
	cat := catalog.New()

	msg := cat.Template(config.TKeyErrInvalidDate, map[string]interface{}{"Field": config.FieldTarget})
	assert.Contains(t, msg, config.FieldTarget)
	assert.NotContains(t, msg, "{{")
}

func TestCatalog_MissingKey(t *testing.T) {
	assert.Equal(t, "no_such_key", catalog.New().Msg("no_such_key"))

	var nilCat *catalog.Catalog
	assert.Equal(t, config.TKeyBtnReset, nilCat.Msg(config.TKeyBtnReset))
	assert.Equal(t, config.TKeyUnitDay, (&catalog.Catalog{}).Plural(config.TKeyUnitDay, 2))
}

func TestCatalog_FormatCount(t *testing.T) {
	cat := catalog.New()

	assert.Equal(t, "0", cat.FormatCount(0))
	assert.Equal(t, "8,400", cat.FormatCount(8400))
	assert.Equal(t, "725,760,000", cat.FormatCount(725760000))

	var nilCat *catalog.Catalog
	assert.Equal(t, "1,200", nilCat.FormatCount(1200))
}

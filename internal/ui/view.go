package ui

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// mainView holds references to the widgets of one render, so handlers and
// tests can reach them without walking the canvas tree.
type mainView struct {
	root fyne.CanvasObject

	themeBtn *widget.Button
	calcBtn  *widget.Button
	resetBtn *widget.Button

	birth  dateInputs
	target dateInputs

	// Results (nil unless State.ShowResults)
	primaryValue *widget.Label
	primaryUnit  *widget.Label
	precise      *widget.Label
	months       *widget.Label
	weeks        *widget.Label
	days         *widget.Label
	hours        *widget.Label
	minutes      *widget.Label
	seconds      *widget.Label

	// Error card (nil unless State.Err)
	errTitle *widget.Label
	errBody  *widget.Label
}

// dateInputs is one month/day/year group.
type dateInputs struct {
	month *widget.Select
	day   *NumericalEntry
	year  *NumericalEntry
	form  *widget.Form
}

// buildView renders s. It reads nothing but s and the catalog.
func (app *AgeCalcApp) buildView(s *FormState) *mainView {
	v := &mainView{}

	// --- Header ---
	v.themeBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnTheme), theme.ColorPaletteIcon(), app.ToggleTheme)
	title := widget.NewLabelWithStyle(app.GetMsg(config.TKeyWinTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, nil, v.themeBtn, title)

	// --- Inputs ---
	v.birth = app.buildDateInputs(fieldBirth, s.Birth)
	v.target = app.buildDateInputs(fieldTarget, s.Target)
	inputs := container.NewGridWithColumns(config.LayoutColumnsDouble,
		widget.NewCard(app.GetMsg(config.TKeyLblBirth), "", v.birth.form),
		widget.NewCard(app.GetMsg(config.TKeyLblTarget), "", v.target.form),
	)

	// --- Actions ---
	v.calcBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.Calculate)
	v.calcBtn.Importance = widget.HighImportance
	v.resetBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnReset), theme.ViewRefreshIcon(), app.Reset)
	actions := container.NewGridWithColumns(config.LayoutColumnsDouble, v.calcBtn, v.resetBtn)

	intro := widget.NewLabel(app.GetMsg(config.TKeyLblCalcIntro))
	intro.Wrapping = fyne.TextWrapWord

	body := container.NewVBox(intro, inputs, actions)
	if s.ShowResults && s.Result != nil {
		body.Add(app.buildResults(v, *s.Result))
	}
	if s.Err != nil {
		body.Add(app.buildError(v, s.Err))
	}
	calcCard := widget.NewCard(app.GetMsg(config.TKeyLblCalcTitle), "", body)

	// --- Footer ---
	footer := widget.NewLabel(app.GetTemplate(config.TKeyLblFooter, map[string]interface{}{"Version": config.Version}))
	footer.Alignment = fyne.TextAlignCenter
	footer.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewVScroll(container.NewPadded(container.NewVBox(calcCard, app.buildInfoCard())))
	v.root = container.NewBorder(header, footer, nil, nil, content)
	return v
}

// buildDateInputs constructs the month select and the day/year entries for one date.
// Values are set before the callbacks are attached so that rendering does not
// fire change events.
func (app *AgeCalcApp) buildDateInputs(f dateField, d engine.CalendarDate) dateInputs {
	var in dateInputs

	in.month = widget.NewSelect(monthNames(), nil)
	in.month.SetSelectedIndex(int(d.Month) - 1)
	in.month.OnChanged = func(string) {
		app.setMonth(f, time.Month(in.month.SelectedIndex()+1))
	}

	in.day = NewNumericalEntry()
	in.day.SetText(strconv.Itoa(d.Day))
	in.day.OnChanged = func(string) {
		n, _ := in.day.Int()
		app.setDay(f, n)
	}

	in.year = NewNumericalEntry()
	in.year.SetText(strconv.Itoa(d.Year))
	in.year.OnChanged = func(string) {
		n, _ := in.year.Int()
		app.setYear(f, n)
	}

	in.form = widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblMonth), in.month),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDay), in.day),
		widget.NewFormItem(app.GetMsg(config.TKeyLblYear), in.year),
	)
	return in
}

// buildResults renders the primary and precise age cards.
func (app *AgeCalcApp) buildResults(v *mainView, r engine.AgeBreakdown) fyne.CanvasObject {
	v.primaryValue = widget.NewLabelWithStyle(strconv.Itoa(r.Years), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.primaryUnit = widget.NewLabelWithStyle(app.GetPlural(config.TKeyUnitYear, r.Years), fyne.TextAlignCenter, fyne.TextStyle{})

	v.months = widget.NewLabel(app.FormatCount(r.TotalMonths))
	v.weeks = widget.NewLabel(app.FormatCount(r.TotalWeeks))
	v.days = widget.NewLabel(app.FormatCount(r.TotalDays))

	primary := widget.NewCard(app.GetMsg(config.TKeyLblPrimary), "", container.NewVBox(
		v.primaryValue,
		v.primaryUnit,
		widget.NewSeparator(),
		widget.NewLabel(app.GetMsg(config.TKeyLblAlternatives)),
		resultRow(app.GetMsg(config.TKeyLblMonths), v.months),
		resultRow(app.GetMsg(config.TKeyLblWeeks), v.weeks),
		resultRow(app.GetMsg(config.TKeyLblDays), v.days),
	))

	v.precise = widget.NewLabelWithStyle(app.preciseAge(r), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.precise.Wrapping = fyne.TextWrapWord

	v.hours = widget.NewLabel(app.FormatCount(r.TotalHours))
	v.minutes = widget.NewLabel(app.FormatCount(r.TotalMinutes))
	v.seconds = widget.NewLabel(app.FormatCount(r.TotalSeconds))

	precise := widget.NewCard(app.GetMsg(config.TKeyLblPrecise), "", container.NewVBox(
		v.precise,
		widget.NewSeparator(),
		widget.NewLabel(app.GetMsg(config.TKeyLblTimeUnits)),
		resultRow(app.GetMsg(config.TKeyLblHours), v.hours),
		resultRow(app.GetMsg(config.TKeyLblMinutes), v.minutes),
		resultRow(app.GetMsg(config.TKeyLblSeconds), v.seconds),
	))

	return widget.NewCard(app.GetMsg(config.TKeyLblResults), "",
		container.NewGridWithColumns(config.LayoutColumnsDouble, primary, precise))
}

// preciseAge formats "Y years, M months, D days" with singular units where needed.
func (app *AgeCalcApp) preciseAge(r engine.AgeBreakdown) string {
	return fmt.Sprintf("%d %s, %d %s, %d %s",
		r.Years, app.GetPlural(config.TKeyUnitYear, r.Years),
		r.Months, app.GetPlural(config.TKeyUnitMonth, r.Months),
		r.Days, app.GetPlural(config.TKeyUnitDay, r.Days),
	)
}

func (app *AgeCalcApp) buildError(v *mainView, err error) fyne.CanvasObject {
	v.errTitle = widget.NewLabelWithStyle(app.GetMsg(config.TKeyErrTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.errTitle.Importance = widget.DangerImportance
	v.errBody = widget.NewLabel(app.errorMessage(err))
	v.errBody.Wrapping = fyne.TextWrapWord
	v.errBody.Importance = widget.DangerImportance
	return container.NewVBox(v.errTitle, v.errBody)
}

// buildInfoCard renders the static explanation of age conventions.
func (app *AgeCalcApp) buildInfoCard() fyne.CanvasObject {
	paragraph := func(key string) *widget.Label {
		l := widget.NewLabel(app.GetMsg(key))
		l.Wrapping = fyne.TextWrapWord
		return l
	}

	systems := widget.NewCard(app.GetMsg(config.TKeyLblInfoSystems), "", paragraph(config.TKeyInfoSystems))

	return widget.NewCard(app.GetMsg(config.TKeyLblInfoTitle), "", container.NewVBox(
		paragraph(config.TKeyInfoCommon),
		systems,
		paragraph(config.TKeyInfoMonthEnd),
	))
}

func resultRow(name string, value *widget.Label) fyne.CanvasObject {
	value.Alignment = fyne.TextAlignTrailing
	value.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewGridWithColumns(config.LayoutColumnsDouble, widget.NewLabel(name), value)
}

// monthNames lists January..December in calendar order.
func monthNames() []string {
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, m.String())
	}
	return names
}

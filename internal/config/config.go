package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Age"
	AppID       = "com.github.tartampluch.go-age"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagBirth        = "birth"
	FlagTarget       = "target"
	FlagVCard        = "vcard"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescBirth    = "Birth date (YYYY-MM-DD); prints the result instead of opening the window"
	FlagDescTarget   = "Target date (YYYY-MM-DD), defaults to today"
	FlagDescVCard    = "vCard file; prints the age of every contact with a birthday"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Headless Output
// -----------------------------------------------------------------------------

const (
	FormatCLIHeader    = "%s -> %s\n"
	FormatCLIPrecise   = "  Age:     %d %s, %d %s, %d %s\n"
	FormatCLIPrimary   = "  Months:  %d\n  Weeks:   %d\n  Days:    %d\n"
	FormatCLITimeUnits = "  Hours:   %d\n  Minutes: %d\n  Seconds: %d\n"
	FormatCLIContact   = "%s (%s): %d %s, %d %s, %d %s\n"
	FormatCLINoYear    = "%s (--%02d-%02d): birth year unknown\n"
	FormatCLISkipped   = "%s (%s): %v\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 720
	MainWindowHeight = 820

	// Preference Keys
	PrefTheme   = "theme"
	PrefLastRun = "last_run_version"

	// DefaultBirthYearsAgo places the initial birth date this many years before today.
	DefaultBirthYearsAgo = 25
	DefaultBirthDay      = 9
)

// DefaultLanguage is the only catalog shipped with the application.
const DefaultLanguage = "en"

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle        = "win_title"
	TKeyBtnTheme        = "btn_toggle_theme"
	TKeyLblCalcTitle    = "lbl_calc_title"
	TKeyLblCalcIntro    = "lbl_calc_intro"
	TKeyLblBirth        = "lbl_birth_section"
	TKeyLblTarget       = "lbl_target_section"
	TKeyLblMonth        = "lbl_month"
	TKeyLblDay          = "lbl_day"
	TKeyLblYear         = "lbl_year"
	TKeyBtnCalculate    = "btn_calculate"
	TKeyBtnReset        = "btn_reset"
	TKeyLblResults      = "lbl_results_title"
	TKeyLblPrimary      = "lbl_primary_age"
	TKeyLblAlternatives = "lbl_alternatives"
	TKeyLblPrecise      = "lbl_precise_age"
	TKeyLblTimeUnits    = "lbl_time_units"
	TKeyLblMonths       = "lbl_months"
	TKeyLblWeeks        = "lbl_weeks"
	TKeyLblDays         = "lbl_days"
	TKeyLblHours        = "lbl_hours"
	TKeyLblMinutes      = "lbl_minutes"
	TKeyLblSeconds      = "lbl_seconds"
	TKeyUnitYear        = "unit_year"  // Requires Count
	TKeyUnitMonth       = "unit_month" // Requires Count
	TKeyUnitDay         = "unit_day"   // Requires Count
	TKeyErrTitle        = "err_title"
	TKeyErrOrdering     = "err_ordering"
	TKeyErrInvalidDate  = "err_invalid_date"
	TKeyLblInfoTitle    = "lbl_info_title"
	TKeyInfoCommon      = "info_common"
	TKeyLblInfoSystems  = "lbl_info_systems"
	TKeyInfoSystems     = "info_systems"
	TKeyInfoMonthEnd    = "info_month_end"
	TKeyLblFooter       = "lbl_footer"
)

// -----------------------------------------------------------------------------
// Calendar Limits & Input Fields
// -----------------------------------------------------------------------------

const (
	MinYear         = 1
	MaxYear         = 9999
	DefaultLeapYear = 2000 // Leap year placeholder for vCard dates like --02-29

	FieldBirth  = "birth"
	FieldTarget = "target"
)

// -----------------------------------------------------------------------------
// Standards: vCard
// -----------------------------------------------------------------------------

const (
	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// FormatCalendarDate renders year, month and day as YYYY-MM-DD.
	FormatCalendarDate = "%04d-%02d-%02d"
	DateSeparator      = "-"

	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = "2006-01-02T15:04:05Z07:00"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidDate     = "invalid calendar date"
	ErrInvalidOrdering = "birth date must be strictly before target date"
	ErrDateSyntax      = "expected YYYY-MM-DD"
	ErrYearRange       = "year out of range"
	ErrMonthRange      = "month out of range"
	ErrDayRange        = "day does not exist in month"
	ErrDateParse       = "unable to parse date"
	ErrLocalPathEmpty  = "configuration error: vCard path is empty"
	ErrVCardOpen       = "failed to open vCard file"
	ErrBirthRequired   = "a birth date or a vCard file is required"
	ErrThemeLoad       = "failed to load theme preference"
	ErrThemeSave       = "failed to save theme preference"
	ErrThemeUnknown    = "unknown theme preference"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackName = "Unknown"

	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgImportSuccess = "vCard import successful"
	MsgCalculated    = "Age calculated"
	MsgCalcRejected  = "Age calculation rejected"
	MsgStateReset    = "Form reset"
	MsgThemeChanged  = "Theme changed"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyNoYear    = "birthdays_without_year"
	LogKeyName      = "name"
	LogKeyBirth     = "birth"
	LogKeyTarget    = "target"
	LogKeyField     = "field"
	LogKeyYears     = "years"
	LogKeyTotalDays = "total_days"
	LogKeyTheme     = "theme"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
	LogKeyMode    = "mode"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI    = "ui"
	CompVCard = "vcard"
	CompCLI   = "cli"
	CompMain  = "main"
	CompI18n  = "i18n"
	CompPrefs = "preferences"
)

// Run modes reported at startup.
const (
	ModeGUI      = "gui"
	ModeHeadless = "headless"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)

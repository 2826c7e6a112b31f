// Package datefmt turns the raw strings handed over by the API (dates, "HH:MM" times, MIME types)
// into display-ready values.
//
// Every operation is permissive by default: bad input degrades to a sentinel such as InvalidDate
// instead of failing. Callers that want to know about bad input use Formatter.Strict.
package datefmt

import (
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en_US"

	"github.com/trezcool/masomo-ui/core"
)

// InvalidDate is rendered in place of any date that cannot be parsed.
const InvalidDate = "Invalid Date"

var (
	usTrans = en_US.New()

	// probe has a day that cannot be mistaken for any part of its year.
	probe = time.Date(1999, time.November, 25, 0, 0, 0, 0, time.UTC)

	std = New()
)

type (
	// Formatter is read-only once built and may be shared by any number of goroutines.
	Formatter struct {
		trans    locales.Translator
		loc      *time.Location
		now      func() time.Time
		log      core.Logger
		dayFirst bool
	}

	Option func(*Formatter)
)

// WithLocale selects the CLDR locale ("en", "en_US", "fr", "fr-CD"...). Unsupported locales fall back to core.DefaultLocale.
func WithLocale(locale string) Option {
	return func(f *Formatter) { f.trans = core.FindTranslator(locale) }
}

// WithLocation sets the zone date-only strings are read in.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

func WithLogger(log core.Logger) Option {
	return func(f *Formatter) { f.log = log }
}

func New(opts ...Option) *Formatter {
	f := &Formatter{
		trans: core.FindTranslator(core.DefaultLocale),
		loc:   time.Local,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.dayFirst = writesDayFirst(f.trans)
	return f
}

// NewFromConfig builds a Formatter from the app's locale & timezone settings.
func NewFromConfig(conf *core.Config, log core.Logger) (*Formatter, error) {
	loc, err := conf.Location()
	if err != nil {
		return nil, err
	}
	return New(WithLocale(conf.Locale), WithLocation(loc), WithLogger(log)), nil
}

// WithLocale returns a copy of f rendering in another locale.
func (f *Formatter) WithLocale(locale string) *Formatter {
	cp := *f
	cp.trans = core.FindTranslator(locale)
	cp.dayFirst = writesDayFirst(cp.trans)
	return &cp
}

// Locale returns the CLDR locale in use.
func (f *Formatter) Locale() string { return f.trans.Locale() }

func (f *Formatter) debug(msg string, input string) {
	if f.log != nil {
		f.log.Debug(msg, core.Fields{"input": input, "locale": f.trans.Locale()})
	}
}

// writesDayFirst reports whether the locale's long date puts the day before the month ("25 novembre 1999").
func writesDayFirst(trans locales.Translator) bool {
	s := trans.FmtDateLong(probe)
	d := strings.Index(s, "25")
	m := strings.Index(s, trans.MonthWide(probe.Month()))
	return d >= 0 && m >= 0 && d < m
}

// Package level helpers backed by the default Formatter (locale "en", local time).

func FormatDate(dateString string, opts ...DateOptions) string {
	return std.FormatDate(dateString, opts...)
}

func FormatShortDate(dateString string) string { return std.FormatShortDate(dateString) }

func FormatTime(time24 string) string { return std.FormatTime(time24) }

func IsPastDue(dueDateString string) bool { return std.IsPastDue(dueDateString) }

func FormatDateTime(dateString, timeString string) string {
	return std.FormatDateTime(dateString, timeString)
}

func GetDayOfWeek(dateString string) string { return std.GetDayOfWeek(dateString) }

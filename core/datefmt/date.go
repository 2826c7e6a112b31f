package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/trezcool/masomo-ui/core"
)

// DateOptions picks how each date component is displayed.
// Keywords: numeric, 2-digit, long, short, narrow (the last three for Month only). Empty fields are omitted.
type DateOptions struct {
	Year  string `json:"year" validate:"omitempty,oneof=numeric 2-digit"`
	Month string `json:"month" validate:"omitempty,datekw"`
	Day   string `json:"day" validate:"omitempty,oneof=numeric 2-digit"`
}

// DefaultDateOptions renders the locale's long date, e.g. "December 25, 2024".
var DefaultDateOptions = DateOptions{Year: "numeric", Month: "long", Day: "numeric"}

func (o DateOptions) IsZero() bool { return o == DateOptions{} }

func (o DateOptions) isFull() bool { return o.Year != "" && o.Month != "" && o.Day != "" }

func resolveOptions(opts []DateOptions) DateOptions {
	if len(opts) == 0 || opts[0].IsZero() {
		return DefaultDateOptions
	}
	return opts[0]
}

// FormatDate renders dateString in the Formatter's locale; "December 25, 2024" by default.
func (f *Formatter) FormatDate(dateString string, opts ...DateOptions) string {
	t, err := f.ParseDate(dateString)
	if err != nil {
		f.debug("datefmt.FormatDate: invalid date", dateString)
		return InvalidDate
	}
	return f.renderDate(t, resolveOptions(opts))
}

// FormatShortDate always renders the US medium date ("Jan 1, 2024") whatever the Formatter's locale.
func (f *Formatter) FormatShortDate(dateString string) string {
	t, err := f.ParseDate(dateString)
	if err != nil {
		f.debug("datefmt.FormatShortDate: invalid date", dateString)
		return InvalidDate
	}
	return usTrans.FmtDateMedium(t)
}

// FormatDateTime joins a date & a time of day and renders the latter on a zero-padded 12-hour clock ("03:04 PM").
func (f *Formatter) FormatDateTime(dateString, timeString string) string {
	t, err := f.parseDateTime(dateString, timeString)
	if err != nil {
		f.debug("datefmt.FormatDateTime: invalid date", joinDateTime(dateString, timeString))
		return InvalidDate
	}
	return renderClock(t)
}

// GetDayOfWeek returns the locale's full weekday name ("Monday", "lundi").
func (f *Formatter) GetDayOfWeek(dateString string) string {
	t, err := f.ParseDate(dateString)
	if err != nil {
		f.debug("datefmt.GetDayOfWeek: invalid date", dateString)
		return InvalidDate
	}
	return f.trans.WeekdayWide(t.Weekday())
}

func joinDateTime(dateString, timeString string) string {
	return core.CleanString(dateString) + "T" + core.CleanString(timeString)
}

func renderClock(t time.Time) string {
	return t.Format("03:04 PM")
}

// renderDate uses the CLDR long & medium dates for {numeric, long|short, numeric} and composes everything else.
func (f *Formatter) renderDate(t time.Time, o DateOptions) string {
	if o.isFull() && o.Year == "numeric" && o.Day == "numeric" {
		switch o.Month {
		case "long":
			return f.trans.FmtDateLong(t)
		case "short":
			return f.trans.FmtDateMedium(t)
		}
	}
	return f.composeDate(t, o)
}

func (f *Formatter) composeDate(t time.Time, o DateOptions) string {
	year := formatNumber(t.Year(), o.Year)
	day := formatNumber(t.Day(), o.Day)

	var month string
	switch o.Month {
	case "":
	case "long":
		month = f.trans.MonthWide(t.Month())
	case "short":
		month = f.trans.MonthAbbreviated(t.Month())
	case "narrow":
		month = f.trans.MonthNarrow(t.Month())
	default:
		month = formatNumber(int(t.Month()), o.Month)
		if f.dayFirst {
			return joinNonEmpty("/", day, month, year)
		}
		return joinNonEmpty("/", month, day, year)
	}

	if f.dayFirst {
		return joinNonEmpty(" ", day, month, year)
	}
	md := joinNonEmpty(" ", month, day)
	if month != "" && day != "" && year != "" {
		return md + ", " + year
	}
	return joinNonEmpty(" ", md, year)
}

func formatNumber(n int, keyword string) string {
	switch keyword {
	case "":
		return ""
	case "2-digit":
		return fmt.Sprintf("%02d", n%100)
	default:
		return strconv.Itoa(n)
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

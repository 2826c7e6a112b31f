package datefmt

import (
	"regexp"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-ui/core"
)

// layouts the API actually sends; tried before the permissive parser.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// dateTimeLayouts are the only shapes accepted for a joined "DATE" + "T" + "TIME".
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// the permissive parser invents a year for inputs like "1/"
var fullYearRegex = regexp.MustCompile(`\d{4}`)

// ParseDate reads a date string the way the API serves them.
// Strings without an offset are civil times in the Formatter's location, so "2024-01-01" is never shifted to Dec 31.
func (f *Formatter) ParseDate(s string) (time.Time, error) {
	s = core.CleanString(s)
	if s == "" {
		return time.Time{}, errors.Wrap(ErrInvalidDate, "empty date")
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, f.loc); err == nil {
			return t, nil
		}
	}
	if !fullYearRegex.MatchString(s) {
		return time.Time{}, errors.Wrapf(ErrInvalidDate, "parsing %q: no 4-digit year", s)
	}
	t, err := dateparse.ParseIn(s, f.loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidDate, "parsing %q: %v", s, err)
	}
	return t, nil
}

// parseDateTime reads a date & a time of day as one local timestamp.
func (f *Formatter) parseDateTime(dateString, timeString string) (time.Time, error) {
	s := joinDateTime(dateString, timeString)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, f.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidDate, "parsing %q", s)
}

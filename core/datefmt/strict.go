package datefmt

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-ui/core"
)

var time24Regex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Strict exposes the Formatter's operations, reporting bad input as errors instead of sentinels.
// errors.Cause on a returned error yields ErrInvalidDate, ErrInvalidTime, ErrUnknownFileType or a *core.ValidationError.
type Strict struct {
	f *Formatter
}

func (f *Formatter) Strict() Strict {
	return Strict{f: f}
}

func (s Strict) FormatDate(dateString string, opts ...DateOptions) (string, error) {
	o := resolveOptions(opts)
	if err := core.ValidateStruct(o); err != nil {
		return "", errors.Wrap(err, "validating date options")
	}
	t, err := s.f.ParseDate(dateString)
	if err != nil {
		return "", err
	}
	return s.f.renderDate(t, o), nil
}

func (s Strict) FormatShortDate(dateString string) (string, error) {
	t, err := s.f.ParseDate(dateString)
	if err != nil {
		return "", err
	}
	return usTrans.FmtDateMedium(t), nil
}

// FormatTime only accepts zero-padded 24-hour "HH:MM" times.
func (s Strict) FormatTime(time24 string) (string, error) {
	time24 = core.CleanString(time24)
	if !time24Regex.MatchString(time24) {
		return "", errors.Wrapf(ErrInvalidTime, "%q is not HH:MM", time24)
	}
	return s.f.FormatTime(time24), nil
}

func (s Strict) GetFileType(mimeType string) (string, error) {
	ft := GetFileType(mimeType)
	if ft == UnknownFileType {
		return "", errors.Wrapf(ErrUnknownFileType, "mime type %q", mimeType)
	}
	return ft, nil
}

func (s Strict) IsPastDue(dueDateString string) (bool, error) {
	due, err := s.f.ParseDate(dueDateString)
	if err != nil {
		return false, err
	}
	return s.f.now().After(due), nil
}

func (s Strict) FormatDateTime(dateString, timeString string) (string, error) {
	t, err := s.f.parseDateTime(dateString, timeString)
	if err != nil {
		return "", err
	}
	return renderClock(t), nil
}

func (s Strict) GetDayOfWeek(dateString string) (string, error) {
	t, err := s.f.ParseDate(dateString)
	if err != nil {
		return "", err
	}
	return s.f.trans.WeekdayWide(t.Weekday()), nil
}

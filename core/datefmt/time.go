package datefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// NaN stands in for any part of a time string that is not a number.
const NaN = "NaN"

// FormatTime converts "HH:MM" to the 12-hour clock: "00:30" -> "12:30 AM", "13:05" -> "1:05 PM".
// Minutes are copied as they are ("9:5" -> "9:5 AM"); bad parts render as NaN.
func (f *Formatter) FormatTime(time24 string) string {
	hours, minutes, ok := splitTime(time24)
	if !ok {
		f.debug("datefmt.FormatTime: malformed time", time24)
	}
	h, err := strconv.Atoi(hours)
	if err != nil {
		return NaN + ":" + minutes + " AM"
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, minutes, period)
}

// splitTime returns the hour & minute fields, ignoring anything after a second colon.
func splitTime(time24 string) (hours, minutes string, ok bool) {
	parts := strings.Split(time24, ":")
	hours = strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return hours, NaN, false
	}
	_, err := strconv.Atoi(hours)
	return hours, parts[1], err == nil
}

package absence

import "github.com/trezcool/masomo-ui/core/datefmt"

// EmptyMessage is shown in place of the listing when a student was never absent.
const EmptyMessage = "No absence records found for this student."

type (
	// Formatter renders the absence dates.
	Formatter interface {
		FormatDate(dateString string, opts ...datefmt.DateOptions) string
		GetDayOfWeek(dateString string) string
	}

	// Record is a student's absences in a section.
	Record struct {
		AbsenceCount int      `json:"absenceCount"`
		AbsenceDates []string `json:"absenceDates"`
	}

	Row struct {
		Index int    `json:"index"` // 1-based
		Date  string `json:"date"`
		Day   string `json:"day"`
	}
)

func (r Record) IsEmpty() bool {
	return len(r.AbsenceDates) == 0
}

// Rows returns one row per absence date, in the order received.
func Rows(f Formatter, r Record) []Row {
	rows := make([]Row, 0, len(r.AbsenceDates))
	for i, date := range r.AbsenceDates {
		rows = append(rows, Row{
			Index: i + 1,
			Date:  f.FormatDate(date),
			Day:   f.GetDayOfWeek(date),
		})
	}
	return rows
}

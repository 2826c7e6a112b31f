package quiz

import (
	"fmt"
	"strings"

	"github.com/trezcool/masomo-ui/core/datefmt"
)

// Statuses, as sent by the API (matched case-insensitively).
const (
	StatusUpcoming     = "upcoming"
	StatusFinished     = "finished"
	StatusAbleToStart  = "able to start"
	StatusNotSubmitted = "not submitted"
)

// EmptyMessage is shown in place of the listing when a course has no quiz.
const EmptyMessage = "No quizzes available for this course"

var badges = map[string]Badge{
	StatusUpcoming:     {Label: "Upcoming", Tone: "warning"},
	StatusFinished:     {Label: "Finished", Tone: "error"},
	StatusAbleToStart:  {Label: "Available", Tone: "success"},
	StatusNotSubmitted: {Label: "Not Submitted", Tone: "neutral"},
}

type (
	// Formatter renders the raw quiz dates & times.
	Formatter interface {
		FormatDate(dateString string, opts ...datefmt.DateOptions) string
		FormatTime(time24 string) string
	}

	Quiz struct {
		ID          int    `json:"quiz_id"`
		Title       string `json:"title"`
		StartDate   string `json:"start_date"`
		StartTime   string `json:"start_time"`
		EndTime     string `json:"end_time"`
		Duration    int    `json:"duration"` // minutes
		TotalPoints int    `json:"total_points"`
		Status      string `json:"status"`
		AbleToView  bool   `json:"able_to_view"`
	}

	Badge struct {
		Label string `json:"label"`
		Tone  string `json:"tone"`
	}

	// Action is what a parent can do with a quiz.
	Action struct {
		Label   string `json:"label"`
		Enabled bool   `json:"enabled"`
		Path    string `json:"path,omitempty"` // results page, only when Enabled
	}

	// Row is one display-ready line of a student's quiz listing.
	Row struct {
		ID        int    `json:"quiz_id"`
		Title     string `json:"title"`
		StartDate string `json:"start_date"`
		Time      string `json:"time"`
		Duration  string `json:"duration"`
		Points    string `json:"points"`
		Badge     *Badge `json:"badge,omitempty"`
		Action    Action `json:"action"`
	}
)

func (q Quiz) status() string {
	return strings.ToLower(q.Status)
}

// Badge returns the status badge, or nil for an unknown status.
func (q Quiz) Badge() *Badge {
	if b, ok := badges[q.status()]; ok {
		return &b
	}
	return nil
}

// ParentAction returns what a parent may do with the quiz of `studentID` in `courseID`.
func (q Quiz) ParentAction(courseID, studentID string) Action {
	switch q.status() {
	case StatusAbleToStart:
		return Action{Label: "Not Available for Parents"}
	case StatusFinished:
		if q.AbleToView {
			return Action{Label: "View Results", Enabled: true, Path: ResultPath(courseID, studentID, q.ID)}
		}
		return Action{Label: "Results Not Available"}
	case StatusNotSubmitted:
		return Action{Label: "Not Submitted"}
	default:
		return Action{Label: "Not Available"}
	}
}

func ResultPath(courseID, studentID string, quizID int) string {
	return fmt.Sprintf("/parent/course/%s/%s/quizes/%d/mark", courseID, studentID, quizID)
}

// Rows builds the parent's listing of a student's quizzes in a course.
func Rows(f Formatter, courseID, studentID string, quizzes []Quiz) []Row {
	rows := make([]Row, 0, len(quizzes))
	for _, q := range quizzes {
		rows = append(rows, Row{
			ID:        q.ID,
			Title:     q.Title,
			StartDate: f.FormatDate(q.StartDate),
			Time:      f.FormatTime(q.StartTime) + " - " + f.FormatTime(q.EndTime),
			Duration:  fmt.Sprintf("%d minutes", q.Duration),
			Points:    fmt.Sprintf("%d pts", q.TotalPoints),
			Badge:     q.Badge(),
			Action:    q.ParentAction(courseID, studentID),
		})
	}
	return rows
}

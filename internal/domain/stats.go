package domain

import "time"

// DateLayout is the calendar-date storage format. Its zero-padded ISO order
// makes lexicographic string comparison agree with calendar order, which the
// stats queries rely on.
const DateLayout = "2006-01-02"

// StatsProfile selects which aggregation scheme the stats endpoint serves.
type StatsProfile string

const (
	// ProfileDueWindows buckets tasks by due-date windows (generation 1).
	ProfileDueWindows StatsProfile = "due-windows"
	// ProfileStatusCounts buckets tasks by status label (generation 2).
	ProfileStatusCounts StatsProfile = "status-counts"
)

// Valid reports whether p names a known profile.
func (p StatsProfile) Valid() bool {
	return p == ProfileDueWindows || p == ProfileStatusCounts
}

// DueWindowStats are the date-window counts of the due-windows profile.
type DueWindowStats struct {
	DueToday    int `json:"dueToday"`
	DueThisWeek int `json:"dueThisWeek"`
	DueNextWeek int `json:"dueNextWeek"`
	Next15Days  int `json:"next15Days"`
	Overdue     int `json:"overdue"`
}

// StatusStats are the status-bucketed counts of the status-counts profile.
type StatusStats struct {
	TotalTasks      int `json:"totalTasks"`
	OpenTasks       int `json:"openTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	CompletedTasks  int `json:"completedTasks"`
	OverdueTasks    int `json:"overdueTasks"`
}

// DateWindow is the single "today" snapshot every sub-count of one stats
// request shares. dueThisWeek and dueNextWeek both include Plus7; the overlap
// comes from the original inclusive BETWEEN ranges and is kept on purpose.
type DateWindow struct {
	Today  string
	Plus7  string
	Plus14 string
	Plus15 string
}

// NewDateWindow builds the window from the given wall-clock time using the
// server's local calendar date.
func NewDateWindow(now time.Time) DateWindow {
	return DateWindow{
		Today:  FormatDate(now),
		Plus7:  FormatDate(now.AddDate(0, 0, 7)),
		Plus14: FormatDate(now.AddDate(0, 0, 14)),
		Plus15: FormatDate(now.AddDate(0, 0, 15)),
	}
}

// FormatDate renders t as a stored calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

package availability

import "time"

// WorkdayCount is the width of the grid: weeks run Monday through Friday.
const WorkdayCount = 5

var DayNames = [WorkdayCount]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// WeekStart truncates t to the Monday of its week, at midnight in t's
// location. A week is identified solely by this date.
func WeekStart(t time.Time) time.Time {
	t = Midnight(t)
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset)
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPastDate reports whether date, truncated to midnight, is strictly
// before today truncated to midnight.
func IsPastDate(date, today time.Time) bool {
	return Midnight(date).Before(Midnight(today))
}

// WeekDates expands a week start into its five workday dates.
func WeekDates(weekStart time.Time) [WorkdayCount]time.Time {
	var dates [WorkdayCount]time.Time
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i)
	}
	return dates
}

// PrevWeek steps one week back. Navigating before the week containing
// today is rejected: past weeks are immutable and there is nothing to do
// there.
func PrevWeek(current, today time.Time) (time.Time, error) {
	prev := WeekStart(current).AddDate(0, 0, -7)
	if prev.Before(WeekStart(today)) {
		return WeekStart(current), newValidationError("cannot navigate before the current week")
	}
	return prev, nil
}

// NextWeek steps one week forward, unconditionally.
func NextWeek(current time.Time) time.Time {
	return WeekStart(current).AddDate(0, 0, 7)
}

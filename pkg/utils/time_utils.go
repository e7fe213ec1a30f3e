package utils

import "time"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatUnixRFC3339 renders a nullable unix-seconds column; nil stays nil so
// JSON callers can tell "never happened" apart from a zero time.
func FormatUnixRFC3339(sec *int64) *string {
	if sec == nil {
		return nil
	}
	s := time.Unix(*sec, 0).UTC().Format(time.RFC3339)
	return &s
}

// MonthStart truncates t to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthsInRange returns the first day of every calendar month spanned by
// [start, end], inclusive of both endpoints' months.
func MonthsInRange(start, end time.Time) []time.Time {
	if end.Before(start) {
		start, end = end, start
	}
	var months []time.Time
	for cur := MonthStart(start); !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		months = append(months, cur)
	}
	return months
}

package util

import (
	"fmt"
	"time"
)

// Day is a calendar day key in the fixed-width "YYYY-MM-DD" form, local time.
// Because the encoding is zero-padded, lexicographic comparison of Day values
// is chronological comparison; bucket keys and range filters rely on that.
type Day string

const dayLayout = "2006-01-02"

func Today() Day {
	return DayOf(time.Now())
}

func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", s, err)
	}
	return DayOf(t), nil
}

func (d Day) Time() time.Time {
	t, _ := time.ParseInLocation(dayLayout, string(d), time.Local)
	return t
}

func (d Day) Valid() bool {
	_, err := time.ParseInLocation(dayLayout, string(d), time.Local)
	return err == nil
}

func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Between reports whether d falls in [start, end], inclusive on both ends.
func (d Day) Between(start, end Day) bool {
	return d >= start && d <= end
}

func StartOfMonth(t time.Time) Day {
	return DayOf(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()))
}

func EndOfMonth(t time.Time) Day {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return DayOf(firstOfNext.AddDate(0, 0, -1))
}

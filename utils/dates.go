package utils

import "time"

// NormalizeDate truncates t to midnight UTC. Every stored date and every
// requested date goes through this so equality comparisons never depend on
// the time-of-day or zone a caller happened to send.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NightsBetween counts the nights in [arrival, departure). Zero or negative
// means the range is not bookable.
func NightsBetween(arrival, departure time.Time) int {
	a := NormalizeDate(arrival)
	d := NormalizeDate(departure)
	return int(d.Sub(a).Hours() / 24)
}

// EachNight calls fn for every stayed night in [arrival, departure).
// The departure day itself is not a stayed night.
func EachNight(arrival, departure time.Time, fn func(night time.Time) error) error {
	for night := NormalizeDate(arrival); night.Before(NormalizeDate(departure)); night = night.AddDate(0, 0, 1) {
		if err := fn(night); err != nil {
			return err
		}
	}
	return nil
}

// ParseDate accepts "2006-01-02" or RFC3339 and normalizes to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return NormalizeDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}

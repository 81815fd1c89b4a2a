package utils

import "time"

// TripDateLayout is the wire format for trip dates. Dates are calendar days,
// not instants, so everything is parsed and compared in UTC.
const TripDateLayout = "2006-01-02"

func ParseTripDate(s string) (time.Time, error) {
	return time.ParseInLocation(TripDateLayout, s, time.UTC)
}

func FormatTripDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TripDateLayout)
}

// NightsBetween counts whole nights between two dates, ignoring clock time.
// Returns 0 when end is not after start.
func NightsBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	nights := int(e.Sub(s).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

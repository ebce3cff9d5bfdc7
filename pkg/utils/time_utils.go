package utils

import "time"

const DateLayout = "2006-01-02"

// India time location (IST, +05:30)
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

func NowIST() time.Time { return time.Now().In(istLoc) }

// ParseDate parses a YYYY-MM-DD string. Returns ok=false on malformed
// input so callers can decide how to default.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, istLoc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DaysBetween returns the inclusive day count of a date range, minimum 1.
// "2024-07-01" to "2024-07-05" spans 5 days.
func DaysBetween(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

package classify

import "time"

// statement timestamps start with a fixed-width YYYYMMDD prefix; anything
// after it (time of day, timezone suffix) is ignored.
const datePrefixLen = 8

// NormalizeDate converts a raw statement timestamp into a YYYY-MM-DD date.
// The date portion is taken verbatim as a wall-clock local date; no timezone
// conversion is performed. If the raw value is too short or not a resolvable
// date, the record is not dropped: the provided processing time is substituted
// and ok is false so the caller can report the record as degraded.
func NormalizeDate(raw string, now time.Time) (date string, ok bool) {
	if len(raw) >= datePrefixLen {
		if t, err := time.Parse("20060102", raw[:datePrefixLen]); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return now.Format("2006-01-02"), false
}

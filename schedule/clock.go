/*
clock.go - Wall-clock "HH:MM" arithmetic

PURPOSE:
  The primitive layer everything else builds on: parsing time-of-day
  strings into minute offsets, shift duration with overnight wraparound,
  interval overlap, and the gap between the end of one shift and the
  start of the next.

OVERNIGHT CONVENTION:
  A shift whose end is before its start ("18:00"-"02:00") wraps past
  midnight: its end belongs to the next day. Duration is (end - start)
  mod 24h, always in [0, 24). Overlap checks normalize end <= start the
  same way, so an interval with equal endpoints spans a full day there.
*/
package schedule

import "fmt"

const minutesPerDay = 24 * 60

// ParseClock converts a 24-hour "HH:MM" string to minutes since midnight.
// Hours must be in [0,23] and minutes in [0,59]; anything else returns an
// error unwrapping to ErrInvalidTimeFormat.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, &InvalidTimeError{Value: s}
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, &InvalidTimeError{Value: s}
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, &InvalidTimeError{Value: s}
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight back to an "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DurationHours returns the length of a shift in hours. A negative raw
// difference means the shift runs overnight, so a day is added:
// DurationHours("22:00", "06:00") == 8.
func DurationHours(start, end string) (float64, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	minutes := e - s
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return float64(minutes) / 60, nil
}

// Overlaps reports whether two shifts on the same calendar date overlap.
// Each range is normalized to a minute interval, extending the end past
// midnight whenever end <= start. Back-to-back shifts (endA == startB) do
// NOT overlap.
func Overlaps(startA, endA, startB, endB string) (bool, error) {
	sa, ea, err := normalizeRange(startA, endA)
	if err != nil {
		return false, err
	}
	sb, eb, err := normalizeRange(startB, endB)
	if err != nil {
		return false, err
	}
	return sa < eb && sb < ea, nil
}

func normalizeRange(start, end string) (int, int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, 0, err
	}
	if e <= s {
		e += minutesPerDay
	}
	return s, e, nil
}

// GapHours returns the break between the end of one shift and the start of
// the employee's next shift, in hours.
//
// When the later start reads earlier on the clock than the earlier end, the
// two could be minutes apart in the wrong order or a night apart in the
// right one. The disambiguation is a half-day heuristic: a raw deficit of
// more than 12 hours is taken to mean the second shift starts the next day
// ("ends 23:00, next starts 02:00" is a 3h break, not -21h). Deficits of
// 12h or less keep their sign. Best-effort only: genuinely ambiguous
// inputs exist and callers gate on gap > 0.
func GapHours(earlierEnd, laterStart string) (float64, error) {
	e, err := ParseClock(earlierEnd)
	if err != nil {
		return 0, err
	}
	s, err := ParseClock(laterStart)
	if err != nil {
		return 0, err
	}
	if s < e && e-s > 12*60 {
		s += minutesPerDay
	}
	return float64(s-e) / 60, nil
}

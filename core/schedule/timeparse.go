package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MinutesPerDay bounds minute-of-day values: valid minutes are in [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// ParseTime converts a time of day to its minute of day.
//
// Accepted forms are `H`, `H:MM` and `HH:MM` (24-hour), each optionally followed by `am`/`pm`
// (any case, spaces and punctuation ignored, so "8:30 P.M." reads as 20:30).
// Missing minutes default to 00. With `pm` an hour other than 12 is moved 12 hours later,
// with `am` hour 12 becomes 0. The resulting hour must be 0-23 and minutes 0-59.
func ParseTime(input string) (int, error) {
	invalid := func() (int, error) {
		return 0, &ParseError{Input: input, Err: ErrInvalidFormat}
	}

	var b strings.Builder
	for _, r := range strings.ToLower(input) {
		if r == ':' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	s := b.String()

	var meridiem string
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		meridiem = s[len(s)-2:]
		s = s[:len(s)-2]
	}

	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return invalid()
	}
	hourStr, minStr := parts[0], "00"
	if len(parts) == 2 {
		minStr = parts[1]
		if len(minStr) != 2 {
			return invalid()
		}
	}
	if len(hourStr) == 0 || len(hourStr) > 2 || !isASCIIDigits(hourStr) || !isASCIIDigits(minStr) {
		return invalid()
	}

	hour, _ := strconv.Atoi(hourStr)
	min, _ := strconv.Atoi(minStr)
	switch meridiem {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || min > 59 {
		return invalid()
	}
	return hour*60 + min, nil
}

// FormatTime renders a minute of day as `HH:MM`, or as `h:MMam`/`h:MMpm` when twelveHour is set.
func FormatTime(minute int, twelveHour bool) string {
	hour, min := minute/60, minute%60
	if !twelveHour {
		return fmt.Sprintf("%02d:%02d", hour, min)
	}
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	if hour %= 12; hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour, min, suffix)
}

// FormatRange renders `start-end`, e.g. "08:00-09:30".
func FormatRange(start, end int, twelveHour bool) string {
	return FormatTime(start, twelveHour) + "-" + FormatTime(end, twelveHour)
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package schedule

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/timetable/core"
)

// Day is a canonical day of the week. The zero value is not a valid day.
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var (
	// Days lists the canonical days in display order.
	Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

	dayAbbrevs = [...]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	dayNames   = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	daysByName = func() map[string]Day {
		m := make(map[string]Day, 2*len(Days))
		for _, d := range Days {
			m[strings.ToLower(dayAbbrevs[d])] = d
			m[strings.ToLower(dayNames[d])] = d
		}
		return m
	}()

	daySuggestMinRatio = .7
)

// ParseDay maps full day names and three-letter abbreviations (any case, optional trailing ".") to a Day.
func ParseDay(s string) (Day, error) {
	key := strings.TrimSuffix(core.CleanString(s, true /* lower */), ".")
	if d, ok := daysByName[key]; ok {
		return d, nil
	}
	return 0, ErrUnknownDay
}

func (d Day) Valid() bool { return d >= Monday && d <= Sunday }

// String returns the canonical three-letter abbreviation.
func (d Day) String() string {
	if !d.Valid() {
		return "Day(" + strconv.Itoa(int(d)) + ")"
	}
	return dayAbbrevs[d]
}

func (d Day) Full() string {
	if !d.Valid() {
		return d.String()
	}
	return dayNames[d]
}

func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.Errorf("marshaling invalid day %d", int(d))
	}
	return []byte(dayAbbrevs[d]), nil
}

func (d *Day) UnmarshalText(text []byte) error {
	day, err := ParseDay(string(text))
	if err != nil {
		return errors.Wrapf(err, "unmarshaling day %q", text)
	}
	*d = day
	return nil
}

// suggestDay returns the full day name that most resembles `s`, if any is similar enough.
func suggestDay(s string) (string, bool) {
	s = core.CleanString(s, true /* lower */)
	if s == "" {
		return "", false
	}
	var (
		best      string
		bestRatio float64
	)
	for _, d := range Days {
		name := dayNames[d]
		ratio := difflib.NewMatcher(strings.Split(s, ""), strings.Split(strings.ToLower(name), "")).QuickRatio()
		if ratio > bestRatio {
			best, bestRatio = name, ratio
		}
	}
	return best, bestRatio >= daySuggestMinRatio
}

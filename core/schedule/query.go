package schedule

import (
	"sort"

	"github.com/trezcool/timetable/core"
)

// GroupKey selects the slot attribute GroupBy groups on.
type GroupKey int

const (
	ByInstructor GroupKey = iota + 1
	ByRoom
	BySection
)

var groupKeyNames = map[GroupKey]string{
	ByInstructor: "instructor",
	ByRoom:       "room",
	BySection:    "section",
}

// ParseGroupKey reads "instructor", "room" or "section".
func ParseGroupKey(s string) (GroupKey, error) {
	s = core.CleanString(s, true /* lower */)
	for key, name := range groupKeyNames {
		if name == s {
			return key, nil
		}
	}
	return 0, errUnknownGroupBy
}

func (key GroupKey) Valid() bool {
	_, ok := groupKeyNames[key]
	return ok
}

func (key GroupKey) String() string {
	if name, ok := groupKeyNames[key]; ok {
		return name
	}
	return "unknown"
}

// Of returns the attribute of slot that key selects, or "" for an invalid key.
func (key GroupKey) Of(slot Slot) string {
	switch key {
	case ByInstructor:
		return slot.InstructorID
	case ByRoom:
		return slot.Room
	case BySection:
		return slot.Section
	default:
		return ""
	}
}

// GroupBy groups slots on the attribute selected by key. Slots keep their relative order within each group.
// An invalid key groups nothing and yields an empty map.
func GroupBy(slots Set, key GroupKey) map[string]Set {
	groups := make(map[string]Set)
	if !key.Valid() {
		return groups
	}
	for _, s := range slots {
		k := key.Of(s)
		groups[k] = append(groups[k], s)
	}
	return groups
}

// SortedKeys returns the group names in ascending order.
func SortedKeys(groups map[string]Set) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SlotsOnDay returns the slots scheduled on day sorted by start time.
// Slots starting at the same minute keep their relative order.
func SlotsOnDay(slots Set, day Day) Set {
	onDay := Set{}
	for _, s := range slots {
		if s.Day == day {
			onDay = append(onDay, s)
		}
	}
	sortByStart(onDay)
	return onDay
}

// Week maps each of the seven canonical days to its slots, sorted as SlotsOnDay does.
type Week map[Day]Set

// WeeklyView builds the Week of slots. Every day is present, days without slots map to an empty Set.
func WeeklyView(slots Set) Week {
	week := make(Week, len(Days))
	for _, d := range Days {
		week[d] = Set{}
	}
	for _, s := range slots {
		if _, ok := week[s.Day]; ok {
			week[s.Day] = append(week[s.Day], s)
		}
	}
	for _, d := range Days {
		sortByStart(week[d])
	}
	return week
}

// Len is the number of slots over the whole week.
func (w Week) Len() int {
	var n int
	for _, set := range w {
		n += len(set)
	}
	return n
}

func sortByStart(set Set) {
	sort.SliceStable(set, func(i, j int) bool { return set[i].StartMinute < set[j].StartMinute })
}

// Filter narrows a set the way the schedules listing does. Zero fields do not filter.
type Filter struct {
	InstructorID string
	Room         string
	Section      string
	Day          Day
	Offset       int
	Limit        int
}

func (f Filter) IsEmpty() bool {
	return f.InstructorID == "" && f.Room == "" && f.Section == "" && f.Day == 0 && f.Offset == 0 && f.Limit == 0
}

// Apply returns the matching slots in their original order, after skipping Offset matches and keeping at most Limit.
func (f Filter) Apply(slots Set) Set {
	matched := Set{}
	var skipped int
	for _, s := range slots {
		if !f.matches(s) {
			continue
		}
		if skipped < f.Offset {
			skipped++
			continue
		}
		if f.Limit > 0 && len(matched) == f.Limit {
			break
		}
		matched = append(matched, s)
	}
	return matched
}

func (f Filter) matches(s Slot) bool {
	return (f.InstructorID == "" || s.InstructorID == f.InstructorID) &&
		(f.Room == "" || s.Room == f.Room) &&
		(f.Section == "" || s.Section == f.Section) &&
		(f.Day == 0 || s.Day == f.Day)
}

// FreeRooms returns the rooms of the catalog that have no slot overlapping [start, end) on day.
// Rooms keep their catalog order.
func FreeRooms(slots Set, rooms []string, day Day, start, end int) []string {
	window := Slot{Day: day, StartMinute: start, EndMinute: end}
	occupied := make(map[string]bool)
	for _, s := range slots {
		if Overlaps(window, s) {
			occupied[s.Room] = true
		}
	}
	free := make([]string, 0, len(rooms))
	for _, room := range rooms {
		if !occupied[room] {
			free = append(free, room)
		}
	}
	return free
}

package schedule

// Resource is a physical or organizational resource that cannot be double-booked.
type Resource string

const (
	ResourceInstructor Resource = "instructor"
	ResourceRoom       Resource = "room"
	ResourceSection    Resource = "section"
)

// Conflict describes an existing slot that clashes with a candidate.
type Conflict struct {
	Slot      Slot       `json:"slot"`
	Resources []Resource `json:"resources"`
	// overlap window, half-open
	OverlapStart int `json:"overlap_start"`
	OverlapEnd   int `json:"overlap_end"`
}

// Minutes is the length of the overlap window.
func (c Conflict) Minutes() int { return c.OverlapEnd - c.OverlapStart }

// Overlaps reports whether two slots share a day and their half-open time ranges intersect.
// Slots that only touch (one ends when the other starts) do not overlap.
func Overlaps(a, b Slot) bool {
	return a.Day == b.Day && a.StartMinute < b.EndMinute && b.StartMinute < a.EndMinute
}

// sharedResources lists the resources both slots use, in instructor, room, section order.
func sharedResources(a, b Slot) []Resource {
	var res []Resource
	if a.InstructorID == b.InstructorID {
		res = append(res, ResourceInstructor)
	}
	if a.Room == b.Room {
		res = append(res, ResourceRoom)
	}
	if a.Section == b.Section {
		res = append(res, ResourceSection)
	}
	return res
}

// sameEntry reports whether b is a stored version of the candidate being edited.
func sameEntry(candidate, b Slot) bool {
	return candidate.ID != "" && candidate.ID == b.ID
}

// FindConflicts returns the slots of existing that clash with candidate, in their order in existing.
// A slot clashes when it overlaps the candidate and shares its instructor, room or section.
// A slot carrying the candidate's own (non-empty) ID is skipped, so an edited entry never clashes with
// its previous version. The result is empty, never nil, when nothing clashes.
func FindConflicts(candidate Slot, existing Set) Set {
	conflicts := Set{}
	for _, b := range existing {
		if sameEntry(candidate, b) || !Overlaps(candidate, b) {
			continue
		}
		if len(sharedResources(candidate, b)) > 0 {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// ExplainConflicts selects the same slots as FindConflicts and details what each one clashes on.
func ExplainConflicts(candidate Slot, existing Set) []Conflict {
	conflicts := make([]Conflict, 0)
	for _, b := range existing {
		if c, ok := explain(candidate, b); ok {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts
}

// AuditConflicts checks a whole set against itself: each slot is compared with every slot before it.
// A clash between slots i < j is reported once, for the later slot j, and entries are ordered by j then i.
// Slots are told apart by position, so slots sharing an ID are still compared.
func AuditConflicts(set Set) []AuditEntry {
	entries := make([]AuditEntry, 0)
	for j := 1; j < len(set); j++ {
		for i := 0; i < j; i++ {
			if c, ok := clash(set[j], set[i]); ok {
				entries = append(entries, AuditEntry{Index: j, Slot: set[j], Conflict: c, ConflictIndex: i})
			}
		}
	}
	return entries
}

// AuditEntry is a clash found by AuditConflicts between Slot (at Index) and Conflict.Slot (at ConflictIndex).
type AuditEntry struct {
	Index         int      `json:"index"`
	Slot          Slot     `json:"slot"`
	ConflictIndex int      `json:"conflict_index"`
	Conflict      Conflict `json:"conflict"`
}

func explain(candidate, b Slot) (Conflict, bool) {
	if sameEntry(candidate, b) {
		return Conflict{}, false
	}
	return clash(candidate, b)
}

// clash describes how b clashes with a, whatever their IDs.
func clash(a, b Slot) (Conflict, bool) {
	if !Overlaps(a, b) {
		return Conflict{}, false
	}
	res := sharedResources(a, b)
	if len(res) == 0 {
		return Conflict{}, false
	}
	return Conflict{
		Slot:         b,
		Resources:    res,
		OverlapStart: maxInt(a.StartMinute, b.StartMinute),
		OverlapEnd:   minInt(a.EndMinute, b.EndMinute),
	}, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/timetable/core/schedule"
	"github.com/trezcool/timetable/tests"
)

func TestFindConflicts(t *testing.T) {
	candidate := testutil.Slot(Monday, 480, 540, "R1", "A", "I1")

	tests := []struct {
		name     string
		existing Set
		want     Set
	}{
		{name: "nothing scheduled", existing: nil, want: Set{}},
		{
			name:     "shared instructor overlapping",
			existing: Set{testutil.Slot(Monday, 510, 570, "R2", "B", "I1")},
			want:     Set{testutil.Slot(Monday, 510, 570, "R2", "B", "I1")},
		},
		{
			name:     "shared room overlapping",
			existing: Set{testutil.Slot(Monday, 450, 500, "R1", "B", "I2")},
			want:     Set{testutil.Slot(Monday, 450, 500, "R1", "B", "I2")},
		},
		{
			name:     "shared section, existing inside candidate",
			existing: Set{testutil.Slot(Monday, 490, 500, "R2", "A", "I2")},
			want:     Set{testutil.Slot(Monday, 490, 500, "R2", "A", "I2")},
		},
		{
			name:     "candidate inside existing",
			existing: Set{testutil.Slot(Monday, 420, 600, "R1", "C", "I3")},
			want:     Set{testutil.Slot(Monday, 420, 600, "R1", "C", "I3")},
		},
		{
			name:     "touching after",
			existing: Set{testutil.Slot(Monday, 540, 600, "R1", "A", "I1")},
			want:     Set{},
		},
		{
			name:     "touching before",
			existing: Set{testutil.Slot(Monday, 420, 480, "R1", "A", "I1")},
			want:     Set{},
		},
		{
			name:     "overlapping but nothing shared",
			existing: Set{testutil.Slot(Monday, 480, 540, "R2", "B", "I2")},
			want:     Set{},
		},
		{
			name: "other days never conflict",
			existing: Set{
				testutil.Slot(Tuesday, 480, 540, "R1", "A", "I1"),
				testutil.Slot(Sunday, 0, 1439, "R1", "A", "I1"),
			},
			want: Set{},
		},
		{
			name: "keeps existing order",
			existing: Set{
				testutil.Slot(Monday, 530, 560, "R3", "A", "I3"),
				testutil.Slot(Monday, 540, 600, "R1", "A", "I1"),
				testutil.Slot(Monday, 470, 490, "R1", "B", "I2"),
				testutil.Slot(Wednesday, 480, 540, "R1", "A", "I1"),
				testutil.Slot(Monday, 500, 510, "R9", "Z", "I1"),
			},
			want: Set{
				testutil.Slot(Monday, 530, 560, "R3", "A", "I3"),
				testutil.Slot(Monday, 470, 490, "R1", "B", "I2"),
				testutil.Slot(Monday, 500, 510, "R9", "Z", "I1"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflicts(candidate, tt.existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindConflicts_doesNotMutate(t *testing.T) {
	candidate := testutil.Slot(Monday, 480, 540, "R1", "A", "I1")
	existing := Set{
		testutil.Slot(Monday, 510, 570, "R2", "B", "I1"),
		testutil.Slot(Monday, 300, 330, "R2", "B", "I1"),
	}
	snapshot := append(Set(nil), existing...)

	got := FindConflicts(candidate, existing)
	got[0].Room = "changed"

	assert.Equal(t, snapshot, existing)
	assert.Equal(t, FindConflicts(candidate, existing), FindConflicts(candidate, existing))
}

func TestFindConflicts_skipsOwnPreviousVersion(t *testing.T) {
	stored := testutil.CreateSlot(t, "Wed", "13:00", "14:00", "Room 104", "D", "inst003", "CS103", "s1")
	other := testutil.CreateSlot(t, "Wed", "15:30", "16:30", "Room 105", "E", "inst003", "CS104", "s2")
	existing := Set{stored, other}

	// moving s1 to 15:00-16:00 only clashes with s2
	moved := testutil.CreateSlot(t, "Wed", "15:00", "16:00", "Room 104", "D", "inst003", "CS103", "s1")
	assert.Equal(t, Set{other}, FindConflicts(moved, existing))

	// shrinking s1 clashes with nothing
	shrunk := testutil.CreateSlot(t, "Wed", "13:00", "13:30", "Room 104", "D", "inst003", "CS103", "s1")
	assert.Empty(t, FindConflicts(shrunk, existing))

	// a fresh entry without ID is checked against everything
	fresh := testutil.CreateSlot(t, "Wed", "13:00", "13:30", "Room 104", "D", "inst003", "CS103")
	assert.Equal(t, Set{stored}, FindConflicts(fresh, existing))
}

func TestExplainConflicts(t *testing.T) {
	candidate := testutil.Slot(Monday, 480, 540, "R1", "A", "I1")
	existing := Set{
		testutil.Slot(Monday, 510, 570, "R2", "B", "I1"),
		testutil.Slot(Monday, 420, 600, "R1", "A", "I1"),
		testutil.Slot(Monday, 400, 490, "R1", "B", "I2"),
		testutil.Slot(Monday, 540, 600, "R1", "A", "I1"),
	}

	got := ExplainConflicts(candidate, existing)
	want := []Conflict{
		{Slot: existing[0], Resources: []Resource{ResourceInstructor}, OverlapStart: 510, OverlapEnd: 540},
		{Slot: existing[1], Resources: []Resource{ResourceInstructor, ResourceRoom, ResourceSection}, OverlapStart: 480, OverlapEnd: 540},
		{Slot: existing[2], Resources: []Resource{ResourceRoom}, OverlapStart: 480, OverlapEnd: 490},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 30, got[0].Minutes())

	// same selection as FindConflicts
	found := FindConflicts(candidate, existing)
	if assert.Len(t, found, len(got)) {
		for i := range got {
			assert.Equal(t, found[i], got[i].Slot)
		}
	}
	assert.Empty(t, ExplainConflicts(candidate, nil))
}

func TestAuditConflicts(t *testing.T) {
	set := Set{
		testutil.Slot(Monday, 480, 540, "R1", "A", "I1"),
		testutil.Slot(Monday, 540, 600, "R1", "A", "I1"),
		testutil.Slot(Monday, 500, 560, "R2", "B", "I1"),
		testutil.Slot(Tuesday, 500, 560, "R2", "B", "I1"),
	}

	got := AuditConflicts(set)
	if !assert.Len(t, got, 2) {
		return
	}
	assert.Equal(t, 2, got[0].Index)
	assert.Equal(t, 0, got[0].ConflictIndex)
	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, 1, got[1].ConflictIndex)
	assert.Equal(t, []Resource{ResourceInstructor}, got[1].Conflict.Resources)

	assert.Empty(t, AuditConflicts(nil))
}

func TestAuditConflicts_sharedID(t *testing.T) {
	a := testutil.CreateSlot(t, "Wed", "13:00", "14:00", "Room 104", "D", "inst003", "CS103", "65a1")
	b := testutil.CreateSlot(t, "Wed", "13:30", "14:30", "Room 104", "D", "inst003", "CS103", "65a1")

	got := AuditConflicts(Set{a, b})
	if assert.Len(t, got, 1) {
		assert.Equal(t, 1, got[0].Index)
		assert.Equal(t, 0, got[0].ConflictIndex)
		assert.Equal(t, []Resource{ResourceInstructor, ResourceRoom, ResourceSection}, got[0].Conflict.Resources)
		assert.Equal(t, 810, got[0].Conflict.OverlapStart)
		assert.Equal(t, 840, got[0].Conflict.OverlapEnd)
	}

	// a candidate-vs-existing check still treats the shared ID as the same entry
	assert.Empty(t, FindConflicts(b, Set{a}))
}

func TestOverlaps(t *testing.T) {
	a := testutil.Slot(Friday, 600, 660, "R", "S", "I")
	tests := []struct {
		name string
		b    Slot
		want bool
	}{
		{name: "same", b: a, want: true},
		{name: "one minute", b: testutil.Slot(Friday, 659, 700, "x", "y", "z"), want: true},
		{name: "touching", b: testutil.Slot(Friday, 660, 700, "R", "S", "I")},
		{name: "other day", b: testutil.Slot(Thursday, 600, 660, "R", "S", "I")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(a, tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

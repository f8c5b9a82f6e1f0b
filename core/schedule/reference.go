package schedule

import "strings"

// Subject is a subject record as served by the subjects API.
type Subject struct {
	Code        string `json:"subject_code"`
	Description string `json:"subject_description"`
	Units       int    `json:"units"`
	Department  string `json:"department,omitempty"`
}

// Instructor is the subset of a user record needed to label schedules.
type Instructor struct {
	ID         string `json:"user_id"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	MiddleName string `json:"middlename,omitempty"`
	Department string `json:"department,omitempty"`
}

func (i Instructor) Name() string {
	name := strings.TrimSpace(i.LastName + ", " + i.FirstName)
	name = strings.Trim(name, ", ")
	if i.MiddleName != "" {
		name += " " + string([]rune(i.MiddleName)[:1]) + "."
	}
	return name
}

// Directory indexes reference data for display. The zero value is usable and knows nobody.
type Directory struct {
	subjects    map[string]Subject
	instructors map[string]Instructor
}

func NewDirectory(subjects []Subject, instructors []Instructor) *Directory {
	dir := &Directory{
		subjects:    make(map[string]Subject, len(subjects)),
		instructors: make(map[string]Instructor, len(instructors)),
	}
	for _, s := range subjects {
		dir.subjects[s.Code] = s
	}
	for _, i := range instructors {
		dir.instructors[i.ID] = i
	}
	return dir
}

func (dir *Directory) Subject(code string) (Subject, bool) {
	if dir == nil {
		return Subject{}, false
	}
	s, ok := dir.subjects[code]
	return s, ok
}

func (dir *Directory) Instructor(id string) (Instructor, bool) {
	if dir == nil {
		return Instructor{}, false
	}
	i, ok := dir.instructors[id]
	return i, ok
}

// SubjectLabel is "CODE Description", or the bare code for unknown subjects.
func (dir *Directory) SubjectLabel(code string) string {
	if s, ok := dir.Subject(code); ok && s.Description != "" {
		return s.Code + " " + s.Description
	}
	return code
}

// InstructorName is the instructor's display name, or the bare ID for unknown instructors.
func (dir *Directory) InstructorName(id string) string {
	if i, ok := dir.Instructor(id); ok {
		if name := i.Name(); name != "" {
			return name
		}
	}
	return id
}

// UnknownSubjects returns the subject codes used by slots that the directory does not know, in first-use order.
func (dir *Directory) UnknownSubjects(slots Set) []string {
	seen := make(map[string]bool)
	var unknown []string
	for _, s := range slots {
		if _, ok := dir.Subject(s.SubjectCode); ok || seen[s.SubjectCode] {
			continue
		}
		seen[s.SubjectCode] = true
		unknown = append(unknown, s.SubjectCode)
	}
	return unknown
}

package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatusEditing is the status given to a freshly created document.
const StatusEditing = "editing"

// timestampLayout matches ISO-8601 local time with microsecond precision.
const timestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp formats t the way the persisted document stores times.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// Document is the complete persisted record set.
type Document struct {
	// Students is the ordered list of student records.
	Students []Student `json:"students"`

	// Status is a free-form document status (e.g., "editing").
	Status string `json:"status"`

	// LastUpdated is refreshed whenever any student record changes.
	LastUpdated string `json:"last_updated"`

	// Extra holds document members added by hand, written back unchanged.
	Extra Fields `json:"-"`
}

// MarshalJSON writes the known members first, then Extra in its read order.
func (d Document) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if err := w.value("students", d.Students); err != nil {
		return nil, err
	}
	if err := w.value("status", d.Status); err != nil {
		return nil, err
	}
	if err := w.value("last_updated", d.LastUpdated); err != nil {
		return nil, err
	}
	if err := w.extra(d.Extra); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// UnmarshalJSON reads a document, keeping members it does not know in Extra.
func (d *Document) UnmarshalJSON(data []byte) error {
	var doc Document
	extra, ok, err := decodeObject(data, func(key string, raw json.RawMessage) (bool, error) {
		switch key {
		case "students":
			return true, json.Unmarshal(raw, &doc.Students)
		case "status":
			return true, json.Unmarshal(raw, &doc.Status)
		case "last_updated":
			return true, json.Unmarshal(raw, &doc.LastUpdated)
		default:
			return false, nil
		}
	})
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}
	if !ok {
		return nil
	}
	doc.Extra = extra
	*d = doc
	return nil
}

// NewDocument returns an empty document stamped with now.
func NewDocument(now time.Time) *Document {
	return &Document{
		Students:    []Student{},
		Status:      StatusEditing,
		LastUpdated: Timestamp(now),
	}
}

// FindStudent returns the student with the given roll number, or nil.
// The returned pointer aliases the document's slice element.
func (d *Document) FindStudent(rollNumber string) *Student {
	for i := range d.Students {
		if d.Students[i].RollNumber == rollNumber {
			return &d.Students[i]
		}
	}
	return nil
}

// IsEmpty reports whether the document holds no students.
func (d *Document) IsEmpty() bool {
	return d == nil || len(d.Students) == 0
}

// Subjects returns every subject that appears in any student's marks,
// in first-seen order.
func (d *Document) Subjects() []string {
	seen := make(map[string]struct{})
	var subjects []string
	for _, s := range d.Students {
		for _, subject := range s.Marks.Subjects() {
			if _, ok := seen[subject]; ok {
				continue
			}
			seen[subject] = struct{}{}
			subjects = append(subjects, subject)
		}
	}
	return subjects
}

// Student is one learner's identity and marks.
type Student struct {
	// RollNumber uniquely identifies the student within a document.
	RollNumber string `json:"roll_number"`

	// Name is the student's display name.
	Name string `json:"name"`

	// Marks maps subject names to marks in [0,100].
	Marks Marks `json:"marks"`

	// LastUpdated is set when one of the student's marks changes.
	LastUpdated string `json:"last_updated,omitempty"`

	// Extra holds student members added by hand, written back unchanged.
	Extra Fields `json:"-"`
}

// MarshalJSON writes the known members, then Extra. A nil Marks is left out,
// so students entered without marks keep that shape until a mark is set.
func (s Student) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if err := w.value("roll_number", s.RollNumber); err != nil {
		return nil, err
	}
	if err := w.value("name", s.Name); err != nil {
		return nil, err
	}
	if s.Marks != nil {
		if err := w.value("marks", s.Marks); err != nil {
			return nil, err
		}
	}
	if s.LastUpdated != "" {
		if err := w.value("last_updated", s.LastUpdated); err != nil {
			return nil, err
		}
	}
	if err := w.extra(s.Extra); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// UnmarshalJSON reads a student, keeping members it does not know in Extra.
func (s *Student) UnmarshalJSON(data []byte) error {
	var st Student
	extra, ok, err := decodeObject(data, func(key string, raw json.RawMessage) (bool, error) {
		switch key {
		case "roll_number":
			return true, json.Unmarshal(raw, &st.RollNumber)
		case "name":
			return true, json.Unmarshal(raw, &st.Name)
		case "marks":
			return true, json.Unmarshal(raw, &st.Marks)
		case "last_updated":
			return true, json.Unmarshal(raw, &st.LastUpdated)
		default:
			return false, nil
		}
	})
	if err != nil {
		return fmt.Errorf("student: %w", err)
	}
	if !ok {
		return nil
	}
	st.Extra = extra
	*s = st
	return nil
}

// Total returns the sum of all present marks.
func (s *Student) Total() int {
	return s.Marks.Total()
}

// Clone returns a copy that shares no marks storage with s.
func (s *Student) Clone() Student {
	c := *s
	if s.Marks != nil {
		c.Marks = append(Marks{}, s.Marks...)
	}
	c.Extra = s.Extra.Clone()
	return c
}

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Mark is a single subject score.
type Mark struct {
	Subject string
	Value   int
}

// Marks is an ordered subject-to-mark mapping.
// It serialises as a JSON object and keeps the key order found on disk,
// so subjects are always listed the way they were entered.
type Marks []Mark

// Get returns the mark for subject and whether it is present.
func (m Marks) Get(subject string) (int, bool) {
	for _, mark := range m {
		if mark.Subject == subject {
			return mark.Value, true
		}
	}
	return 0, false
}

// Set replaces the mark for subject in place, or appends it.
func (m *Marks) Set(subject string, value int) {
	for i := range *m {
		if (*m)[i].Subject == subject {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Mark{Subject: subject, Value: value})
}

// Subjects returns the subject names in order.
func (m Marks) Subjects() []string {
	subjects := make([]string, 0, len(m))
	for _, mark := range m {
		subjects = append(subjects, mark.Subject)
	}
	return subjects
}

// Total returns the sum of all marks.
func (m Marks) Total() int {
	total := 0
	for _, mark := range m {
		total += mark.Value
	}
	return total
}

// MarshalJSON writes the marks as a JSON object in order.
// A nil Marks is written as an empty object.
func (m Marks) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mark := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mark.Subject)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(mark.Value))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of integer marks, keeping key order.
// null yields a nil Marks; an empty object yields an empty, non-nil one.
func (m *Marks) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("marks: expected object, got %v", tok)
	}

	result := Marks{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		subject, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("marks: expected subject name, got %v", keyTok)
		}
		var value int
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("marks: subject %q: %w", subject, err)
		}
		result.Set(subject, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = result
	return nil
}

package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 30, 15, 123456000, time.Local)

	assert.Equal(t, "2024-05-01T09:30:15.123456", Timestamp(ts))
}

func TestNewDocument(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

	doc := NewDocument(now)

	require.NotNil(t, doc)
	assert.Empty(t, doc.Students)
	assert.NotNil(t, doc.Students)
	assert.Equal(t, StatusEditing, doc.Status)
	assert.Equal(t, "2024-01-02T03:04:05.000000", doc.LastUpdated)
	assert.True(t, doc.IsEmpty())
}

func TestNewDocument_MarshalsEmptyStudentList(t *testing.T) {
	doc := NewDocument(time.Now())

	data, err := json.Marshal(doc)

	require.NoError(t, err)
	assert.Contains(t, string(data), `"students":[]`)
	assert.Contains(t, string(data), `"status":"editing"`)
}

func TestDocument_FindStudent(t *testing.T) {
	doc := &Document{Students: []Student{
		{RollNumber: "101", Name: "Alice"},
		{RollNumber: "102", Name: "Bob"},
	}}

	found := doc.FindStudent("102")
	require.NotNil(t, found)
	assert.Equal(t, "Bob", found.Name)

	// Pointer aliases the slice element
	found.Name = "Robert"
	assert.Equal(t, "Robert", doc.Students[1].Name)

	assert.Nil(t, doc.FindStudent("999"))
}

func TestDocument_IsEmpty_Nil(t *testing.T) {
	var doc *Document
	assert.True(t, doc.IsEmpty())
}

func TestDocument_Subjects_FirstSeenOrder(t *testing.T) {
	doc := &Document{Students: []Student{
		{RollNumber: "1", Marks: Marks{{"physics", 50}, {"math", 60}}},
		{RollNumber: "2"},
		{RollNumber: "3", Marks: Marks{{"math", 70}, {"chemistry", 80}}},
	}}

	assert.Equal(t, []string{"physics", "math", "chemistry"}, doc.Subjects())
}

func TestStudent_Total(t *testing.T) {
	s := Student{Marks: Marks{{"math", 80}, {"physics", 15}}}
	assert.Equal(t, 95, s.Total())

	empty := Student{}
	assert.Equal(t, 0, empty.Total())
}

func TestMarks_GetSet(t *testing.T) {
	var m Marks

	_, ok := m.Get("math")
	assert.False(t, ok)

	m.Set("math", 80)
	m.Set("physics", 70)
	m.Set("math", 95)

	v, ok := m.Get("math")
	assert.True(t, ok)
	assert.Equal(t, 95, v)
	assert.Equal(t, []string{"math", "physics"}, m.Subjects())
	assert.Equal(t, 165, m.Total())
}

func TestMarks_MarshalJSON_KeepsOrder(t *testing.T) {
	m := Marks{{"physics", 70}, {"math", 80}, {"chemistry", 0}}

	data, err := json.Marshal(m)

	require.NoError(t, err)
	assert.Equal(t, `{"physics":70,"math":80,"chemistry":0}`, string(data))
}

func TestMarks_MarshalJSON_Nil(t *testing.T) {
	s := Student{RollNumber: "101", Name: "Alice"}

	data, err := json.Marshal(s)

	require.NoError(t, err)
	assert.Equal(t, `{"roll_number":"101","name":"Alice"}`, string(data))
}

func TestMarks_EmptyObjectIsKept(t *testing.T) {
	var s Student
	require.NoError(t, json.Unmarshal([]byte(`{"roll_number":"1","name":"A","marks":{}}`), &s))

	assert.NotNil(t, s.Marks)
	assert.Empty(t, s.Marks)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"roll_number":"1","name":"A","marks":{}}`, string(data))
}

func TestMarks_UnmarshalJSON_KeepsOrder(t *testing.T) {
	var m Marks

	err := json.Unmarshal([]byte(`{"zoology": 10, "art": 20, "math": 30}`), &m)

	require.NoError(t, err)
	assert.Equal(t, []string{"zoology", "art", "math"}, m.Subjects())
	assert.Equal(t, 60, m.Total())
}

func TestMarks_UnmarshalJSON_Null(t *testing.T) {
	var s Student

	err := json.Unmarshal([]byte(`{"roll_number":"1","name":"A","marks":null}`), &s)

	require.NoError(t, err)
	assert.Nil(t, s.Marks)
}

func TestMarks_UnmarshalJSON_Missing(t *testing.T) {
	var s Student

	err := json.Unmarshal([]byte(`{"roll_number":"1","name":"A"}`), &s)

	require.NoError(t, err)
	assert.Nil(t, s.Marks)
	assert.Equal(t, 0, s.Total())
}

func TestMarks_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "array instead of object", input: `[1, 2]`},
		{name: "string mark", input: `{"math": "80"}`},
		{name: "fractional mark", input: `{"math": 80.5}`},
		{name: "truncated", input: `{"math": 80`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Marks
			assert.Error(t, json.Unmarshal([]byte(tt.input), &m))
		})
	}
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	doc := &Document{
		Students: []Student{
			{RollNumber: "101", Name: "Alice", Marks: Marks{{"math", 80}, {"physics", 90}}, LastUpdated: "2024-01-01T00:00:00.000000"},
			{RollNumber: "102", Name: "Bob", Marks: Marks{{"chemistry", 55}}},
		},
		Status:      StatusEditing,
		LastUpdated: "2024-01-01T00:00:00.000000",
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)

	var loaded Document
	require.NoError(t, json.Unmarshal(data, &loaded))

	assert.Equal(t, *doc, loaded)
}

func TestStudent_Clone(t *testing.T) {
	original := Student{RollNumber: "101", Name: "Alice", Marks: Marks{{"math", 80}}}

	c := original.Clone()
	c.Marks.Set("math", 10)

	v, _ := original.Marks.Get("math")
	assert.Equal(t, 80, v)
	assert.Equal(t, "Alice", c.Name)

	noMarks := Student{RollNumber: "102"}
	assert.Nil(t, noMarks.Clone().Marks)
}

func TestDocument_UnknownMembersSurvive(t *testing.T) {
	input := `{
  "school": "X High",
  "students": [
    {"roll_number": "101", "class": "10A", "name": "Alice", "marks": {"math": 80}, "guardian": {"name": "Dana"}},
    {"roll_number": "102", "name": "Bob"}
  ],
  "status": "editing",
  "last_updated": "2024-01-01T00:00:00.000000",
  "term": 2
}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))

	assert.Equal(t, Fields{
		{Key: "school", Value: json.RawMessage(`"X High"`)},
		{Key: "term", Value: json.RawMessage(`2`)},
	}, doc.Extra)
	require.Len(t, doc.Students, 2)
	assert.Equal(t, []string{"class", "guardian"}, []string{doc.Students[0].Extra[0].Key, doc.Students[0].Extra[1].Key})
	assert.Nil(t, doc.Students[1].Extra)

	doc.Students[0].Marks.Set("math", 95)
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.Equal(t,
		`{"students":[`+
			`{"roll_number":"101","name":"Alice","marks":{"math":95},"class":"10A","guardian":{"name":"Dana"}},`+
			`{"roll_number":"102","name":"Bob"}],`+
			`"status":"editing","last_updated":"2024-01-01T00:00:00.000000","school":"X High","term":2}`,
		string(data))
}

func TestDocument_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "array document", input: `[]`},
		{name: "student not an object", input: `{"students": [1]}`},
		{name: "numeric roll number", input: `{"students": [{"roll_number": 101}]}`},
		{name: "bad marks", input: `{"students": [{"roll_number": "1", "marks": {"math": "x"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc Document
			assert.Error(t, json.Unmarshal([]byte(tt.input), &doc))
		})
	}
}

func TestStudent_Clone_CopiesExtra(t *testing.T) {
	original := Student{RollNumber: "101", Extra: Fields{{Key: "class", Value: json.RawMessage(`"10A"`)}}}

	c := original.Clone()
	c.Extra[0].Value[1] = '9'

	assert.Equal(t, `"10A"`, string(original.Extra[0].Value))
}

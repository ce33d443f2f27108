package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

func TestNewStore_DefaultPath(t *testing.T) {
	assert.Equal(t, "database.json", NewStore("").Path())
}

func TestStore_Read_Missing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "database.json"))

	doc, err := store.Read(context.Background())

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Read_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	doc, err := NewStore(path).Read(context.Background())

	assert.Nil(t, doc)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "decode")

	// File is left untouched
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "{not json", string(data))
}

func TestStore_Read_HandEditedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	content := `{
  "students": [
    {"roll_number": "101", "name": "Alice", "marks": {"physics": 70, "math": 80}},
    {"roll_number": "102", "name": "Bob"}
  ],
  "status": "editing",
  "last_updated": "2024-01-01T00:00:00.000000"
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := NewStore(path).Read(context.Background())

	require.NoError(t, err)
	require.Len(t, doc.Students, 2)
	assert.Equal(t, []string{"physics", "math"}, doc.Students[0].Marks.Subjects())
	assert.Nil(t, doc.Students[1].Marks)
	assert.Equal(t, "2024-01-01T00:00:00.000000", doc.LastUpdated)
}

func TestStore_Read_NullStudents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"status": "editing"}`), 0o644))

	doc, err := NewStore(path).Read(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, doc.Students)
	assert.True(t, doc.IsEmpty())
}

func TestStore_Write_PrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	store := NewStore(path)
	doc := &domain.Document{
		Students: []domain.Student{
			{RollNumber: "101", Name: "Alice", Marks: domain.Marks{{Subject: "math", Value: 95}}},
		},
		Status:      domain.StatusEditing,
		LastUpdated: "2024-01-01T00:00:00.000000",
	}

	require.NoError(t, store.Write(context.Background(), doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := `{
  "students": [
    {
      "roll_number": "101",
      "name": "Alice",
      "marks": {
        "math": 95
      }
    }
  ],
  "status": "editing",
  "last_updated": "2024-01-01T00:00:00.000000"
}
`
	assert.Equal(t, expected, string(data))
}

func TestStore_Write_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "database.json")
	store := NewStore(path)

	require.NoError(t, store.Write(context.Background(), domain.NewDocument(time.Now())))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	store := NewStore(path)
	ctx := context.Background()
	doc := &domain.Document{
		Students: []domain.Student{
			{RollNumber: "103", Name: "Carol", Marks: domain.Marks{{Subject: "chemistry", Value: 60}}},
			{RollNumber: "101", Name: "Alice", Marks: domain.Marks{{Subject: "math", Value: 80}, {Subject: "physics", Value: 75}}, LastUpdated: "2024-02-02T10:00:00.000000"},
			{RollNumber: "102", Name: "Bob"},
		},
		Status:      domain.StatusEditing,
		LastUpdated: "2024-02-02T10:00:00.000000",
	}

	require.NoError(t, store.Write(ctx, doc))
	loaded, err := store.Read(ctx)

	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestStore_HandEditedKeysSurviveWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	content := `{
  "students": [
    {"roll_number": "101", "name": "Alice", "class": "10A", "marks": {"math": 80}},
    {"roll_number": "102", "name": "Bob"}
  ],
  "status": "editing",
  "last_updated": "2024-01-01T00:00:00.000000",
  "school": "X High"
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	store := NewStore(path)
	ctx := context.Background()

	doc, err := store.Read(ctx)
	require.NoError(t, err)
	doc.FindStudent("101").Marks.Set("math", 95)
	require.NoError(t, store.Write(ctx, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := `{
  "students": [
    {
      "roll_number": "101",
      "name": "Alice",
      "marks": {
        "math": 95
      },
      "class": "10A"
    },
    {
      "roll_number": "102",
      "name": "Bob"
    }
  ],
  "status": "editing",
  "last_updated": "2024-01-01T00:00:00.000000",
  "school": "X High"
}
`
	assert.Equal(t, expected, string(data))
}

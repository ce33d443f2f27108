package domain

// Standing is one leaderboard row.
type Standing struct {
	// Rank is the 1-based position in the leaderboard.
	Rank int

	// Student is a copy of the student record.
	Student Student

	// Total is the sum of the student's marks.
	Total int
}

// MarkRow is one student's mark for a single subject.
type MarkRow struct {
	Student Student
	Subject string
	Mark    int

	// Present is false when the student has no mark for Subject.
	Present bool
}

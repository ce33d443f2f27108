package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidMark indicates a mark that is not an integer between 0 and 100.
	ErrInvalidMark = errors.New("invalid mark")

	// ErrNoRecords indicates the document holds no students.
	ErrNoRecords = errors.New("no student records available")

	// Authentication Errors.

	// ErrAuthInvalid indicates the username or secret did not match.
	ErrAuthInvalid = errors.New("invalid credentials")

	// ErrAuthRequired indicates the operation needs a teacher session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrForbiddenSubject indicates a teacher tried to edit another subject.
	ErrForbiddenSubject = errors.New("subject not assigned to teacher")

	// ErrUnsupportedScheme indicates an unknown secret verification scheme.
	ErrUnsupportedScheme = errors.New("unsupported secret scheme")
)

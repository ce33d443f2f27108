package domain

import "time"

// Session owns the in-memory document and the logged-in teacher for one
// interactive run. Operations receive it explicitly.
type Session struct {
	// ID identifies the session in verbose logs.
	ID string

	// Document is the loaded record set.
	Document *Document

	// Teacher is the authenticated identity, nil when nobody is logged in.
	Teacher *TeacherSession

	// Created is true when opening the session had to create the document.
	Created bool
}

// TeacherSession is the authenticated identity/subject pair.
type TeacherSession struct {
	Username string
	Subject  string
	Since    time.Time
}

// NewSession wraps doc in a session with no teacher logged in.
func NewSession(id string, doc *Document) *Session {
	return &Session{ID: id, Document: doc}
}

// LoggedIn reports whether a teacher is authenticated.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Teacher != nil
}

// Logout clears the teacher identity.
func (s *Session) Logout() {
	s.Teacher = nil
}

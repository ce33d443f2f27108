// Package domain defines the core business entities for the marks register.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The persisted record set (students plus metadata)
//   - Student: One learner's identity and subject-to-mark mapping
//   - Credential: A teacher login entry bound to a subject
//   - Session: The in-memory document and the logged-in teacher
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

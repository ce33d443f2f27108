// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: Whole-document persistence (JSON file)
//   - ConfigStore: Application configuration (TOML file)
//   - SecretVerifier: Compares a stored teacher secret with a login attempt
//
// # Optional Interfaces
//
// These can be nil - the commands that need them report an error:
//
//   - FileWatcher: Signals external edits to the document (TUI live reload)
//   - ReportExporter: Writes the leaderboard to a spreadsheet
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Every operation receives the *domain.Session it acts on; services
// hold no per-run state of their own.
package services

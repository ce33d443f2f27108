// Package auth provides secret verifiers for teacher logins.
//
// The built-in credential table stores plaintext secrets; HashCredentials
// converts a table for the bcrypt verifier so either scheme can be selected
// from configuration.
package auth

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single registered account.
// The username doubles as the login identifier and is unique across the system.
type User struct {
	ID           int64     // Database-generated identifier, also the owner key for tasks.
	Username     string    // Unique login identifier, matched case-sensitively.
	PasswordHash string    // bcrypt hash of the account password. Never exposed outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity is the authenticated principal recovered from a session token.
// It is reconstructed per request and never persisted; its UserID is usable
// directly as the owner key for task operations.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

package entity

import "time"

// Task is a single to-do item belonging to exactly one user.
// Mutation and deletion are permitted only when the acting identity's
// UserID matches OwnerID.
type Task struct {
	ID          int64     // Database-generated identifier.
	Title       string    // Short task title.
	Description string    // Free-form task description.
	Done        bool      // Completion flag, false for newly created tasks.
	OwnerID     int64     // Foreign key to the owning User.
	CreatedAt   time.Time // Timestamp of when this task was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this task.
}

package domain

import (
	"context"
	"time"
)

type RoutineRepository interface {
	// Load returns every routine stored for the user. A user without a document
	// gets an empty set, never an error.
	Load(ctx context.Context, userID string) (RoutineSet, error)

	// Save replaces the user's whole document with routines.
	Save(ctx context.Context, userID string, routines RoutineSet) error
}

type JournalRepository interface {
	// Append adds text to the file of the day of at.
	Append(ctx context.Context, userID string, at time.Time, text string) error

	// List returns one entry per day, newest first.
	List(ctx context.Context, userID string) ([]JournalEntry, error)
}

type HealthRepository interface {
	// Load returns the stored history, or a zero value when there is none.
	Load(ctx context.Context, userID string) (HealthHistory, error)

	// Save overwrites the stored history.
	Save(ctx context.Context, userID string, history HealthHistory) error
}

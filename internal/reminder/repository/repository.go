package repository

import (
	"time"

	"vrikzo-backend/internal/reminder/domain"
)

// ReminderRepository defines the interface for reminder data access
type ReminderRepository interface {
	// Create persists a new reminder, generating its ID and CreatedAt.
	Create(reminder *domain.Reminder) error

	// FindDue returns all reminders scheduled for exactly the given
	// minute. This is an equality match at minute granularity, not a
	// due-or-overdue range query.
	FindDue(minute time.Time) ([]*domain.Reminder, error)

	// Delete removes a reminder by ID. Deleting a missing ID is not an error.
	Delete(id string) error
}

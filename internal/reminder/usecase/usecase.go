package usecase

import "vrikzo-backend/internal/reminder/domain"

// ReminderUsecase defines the interface for reminder business logic
type ReminderUsecase interface {
	// CreateReminder validates the input, registers the email address,
	// and persists a new reminder. Invalid input fails with a
	// *domain.ValidationError before anything is persisted.
	CreateReminder(email, plantName, action, scheduleDate, remedyText string) (*domain.Reminder, error)

	// CancelReminder removes a reminder by ID. Cancelling an unknown
	// ID is a no-op.
	CancelReminder(id string) error
}

package repository

// EmailUserRepository defines data access for the email registry.
type EmailUserRepository interface {
	// Upsert records an email address, creating it if absent.
	// Re-registering an existing address is a no-op.
	Upsert(email string) error
}

package domain

import (
	"strings"
	"time"
)

// EmailUser records that an email address has interacted with the
// system. It is a mailing-list registry, not an authentication identity.
type EmailUser struct {
	Email     string    `json:"email" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeEmail lowercases and trims an address so the registry stays
// free of case and whitespace duplicates.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package repository

import (
	"time"

	"gorm.io/gorm"

	"vrikzo-backend/internal/user/domain"
)

// gormEmailUserRepository implements EmailUserRepository using GORM
type gormEmailUserRepository struct {
	db *gorm.DB
}

// NewGormEmailUserRepository creates a new GORM-based EmailUserRepository
func NewGormEmailUserRepository(db *gorm.DB) EmailUserRepository {
	return &gormEmailUserRepository{db: db}
}

func (r *gormEmailUserRepository) Upsert(email string) error {
	user := domain.EmailUser{
		Email:     domain.NormalizeEmail(email),
		CreatedAt: time.Now(),
	}
	return r.db.Where("email = ?", user.Email).
		FirstOrCreate(&user).Error
}

package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vrikzo-backend/internal/reminder/domain"
)

// gormReminderRepository implements ReminderRepository using GORM
type gormReminderRepository struct {
	db *gorm.DB
}

// NewGormReminderRepository creates a new GORM-based ReminderRepository
func NewGormReminderRepository(db *gorm.DB) ReminderRepository {
	return &gormReminderRepository{db: db}
}

func (r *gormReminderRepository) Create(reminder *domain.Reminder) error {
	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	reminder.CreatedAt = time.Now()
	// ScheduleDate is truncated at the write so the exact-minute
	// equality match in FindDue holds regardless of what seconds the
	// client sent.
	reminder.ScheduleDate = reminder.ScheduleDate.Truncate(time.Minute)
	return r.db.Create(reminder).Error
}

func (r *gormReminderRepository) FindDue(minute time.Time) ([]*domain.Reminder, error) {
	var reminders []*domain.Reminder
	err := r.db.Where("schedule_date = ?", minute.Truncate(time.Minute)).
		Find(&reminders).Error
	return reminders, err
}

func (r *gormReminderRepository) Delete(id string) error {
	return r.db.Delete(&domain.Reminder{}, "id = ?", id).Error
}

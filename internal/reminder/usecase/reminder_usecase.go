package usecase

import (
	"fmt"
	"strings"
	"time"

	"vrikzo-backend/internal/reminder/domain"
	"vrikzo-backend/internal/reminder/repository"
	userdomain "vrikzo-backend/internal/user/domain"
	userrepo "vrikzo-backend/internal/user/repository"
)

// scheduleDateLayouts lists the accepted timestamp formats. Browser
// datetime-local inputs omit the zone and sometimes the seconds.
var scheduleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// reminderUsecase implements ReminderUsecase
type reminderUsecase struct {
	reminderRepo repository.ReminderRepository
	userRepo     userrepo.EmailUserRepository
}

// NewReminderUsecase creates a new instance of reminderUsecase
func NewReminderUsecase(reminderRepo repository.ReminderRepository, userRepo userrepo.EmailUserRepository) ReminderUsecase {
	return &reminderUsecase{
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
	}
}

func (u *reminderUsecase) CreateReminder(email, plantName, action, scheduleDate, remedyText string) (*domain.Reminder, error) {
	email = userdomain.NormalizeEmail(email)

	// Validate everything before touching the store.
	switch {
	case email == "":
		return nil, &domain.ValidationError{Field: "email", Reason: "is required"}
	case strings.TrimSpace(plantName) == "":
		return nil, &domain.ValidationError{Field: "plantName", Reason: "is required"}
	case action == "":
		return nil, &domain.ValidationError{Field: "action", Reason: "is required"}
	case scheduleDate == "":
		return nil, &domain.ValidationError{Field: "scheduleDate", Reason: "is required"}
	}

	act := domain.Action(action)
	if !act.Valid() {
		return nil, &domain.ValidationError{Field: "action", Reason: `must be "water" or "treatment"`}
	}

	parsed, err := parseScheduleDate(scheduleDate)
	if err != nil {
		return nil, &domain.ValidationError{Field: "scheduleDate", Reason: "is not a valid timestamp"}
	}

	// Register the address first so the mailing list sees every email
	// that ever scheduled a reminder.
	if err := u.userRepo.Upsert(email); err != nil {
		return nil, fmt.Errorf("register email: %w", err)
	}

	reminder := &domain.Reminder{
		Email:        email,
		PlantName:    strings.TrimSpace(plantName),
		Action:       act,
		ScheduleDate: parsed,
		RemedyText:   remedyText,
	}
	if err := u.reminderRepo.Create(reminder); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}

	return reminder, nil
}

func (u *reminderUsecase) CancelReminder(id string) error {
	return u.reminderRepo.Delete(id)
}

func parseScheduleDate(value string) (time.Time, error) {
	for _, layout := range scheduleDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

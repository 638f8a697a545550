package domain

import (
	"fmt"
	"time"
)

// Action is the plant-care action a reminder asks the user to perform.
type Action string

const (
	ActionWater     Action = "water"
	ActionTreatment Action = "treatment"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	return a == ActionWater || a == ActionTreatment
}

// Label returns the human-facing form of the action for subjects and bodies.
func (a Action) Label() string {
	if a == ActionWater {
		return "Water"
	}
	return "Treatment"
}

// Reminder is a one-shot request to email a user at a future minute
// about a plant-care action. It exists from creation until it is
// dispatched or cancelled.
type Reminder struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"index;not null"`
	PlantName    string    `json:"plantName" gorm:"not null"`
	Action       Action    `json:"action" gorm:"not null"`
	ScheduleDate time.Time `json:"scheduleDate" gorm:"index;not null"`
	RemedyText   string    `json:"remedyText,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidationError reports which precondition failed during reminder creation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

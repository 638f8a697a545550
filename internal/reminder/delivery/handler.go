package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vrikzo-backend/internal/reminder/domain"
	"vrikzo-backend/internal/reminder/usecase"
)

// ReminderHandler handles reminder-related HTTP requests
type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{reminderUsecase: reminderUsecase}
}

// CreateReminderRequest represents the request body for scheduling a reminder
type CreateReminderRequest struct {
	Email        string `json:"email"`
	PlantName    string `json:"plantName"`
	Action       string `json:"action"`
	ScheduleDate string `json:"scheduleDate"`
	RemedyText   string `json:"remedyText"`
}

// CreateReminder schedules a one-shot reminder email
// POST /api/reminders/create
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	reminder, err := h.reminderUsecase.CreateReminder(req.Email, req.PlantName, req.Action, req.ScheduleDate, req.RemedyText)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Reminder scheduled successfully!",
		"reminder": reminder,
	})
}

// CancelReminder removes a scheduled reminder before it fires
// DELETE /api/reminders/:id
func (h *ReminderHandler) CancelReminder(c *gin.Context) {
	id := c.Param("id")

	if err := h.reminderUsecase.CancelReminder(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

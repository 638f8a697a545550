package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vrikzo-backend/internal/user/repository"
)

// UserHandler handles email-registry HTTP requests
type UserHandler struct {
	userRepo repository.EmailUserRepository
}

func NewUserHandler(userRepo repository.EmailUserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// RegisterEmail records an email address in the mailing-list registry
// POST /api/users/registerEmail
func (h *UserHandler) RegisterEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	if err := h.userRepo.Upsert(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email registered successfully"})
}

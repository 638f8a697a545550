package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vrikzo-backend/internal/detect/usecase"
)

// DetectHandler handles disease-detection HTTP requests
type DetectHandler struct {
	detectUsecase *usecase.DetectUsecase
}

func NewDetectHandler(detectUsecase *usecase.DetectUsecase) *DetectHandler {
	return &DetectHandler{detectUsecase: detectUsecase}
}

// Detect classifies a previously uploaded image
// POST /api/detect
func (h *DetectHandler) Detect(c *gin.Context) {
	var req struct {
		ImagePath string `json:"imagePath"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ImagePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "No image path provided.",
			"message": "Please upload or provide an image path.",
		})
		return
	}

	resp, err := h.detectUsecase.Detect(c.Request.Context(), req.ImagePath)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrModelUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "Detection model not responding.",
				"message": "Ensure the CNN model server is running.",
			})
		case errors.Is(err, usecase.ErrUnrecognized):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Detection failed.",
				"message": "Unable to identify plant or disease. Try another image.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

package api

import (
	"github.com/gin-gonic/gin"

	chatDelivery "vrikzo-backend/internal/chat/delivery"
	chatUsecase "vrikzo-backend/internal/chat/usecase"
	detectDelivery "vrikzo-backend/internal/detect/delivery"
	detectUsecase "vrikzo-backend/internal/detect/usecase"
	reminderDelivery "vrikzo-backend/internal/reminder/delivery"
	reminderUsecase "vrikzo-backend/internal/reminder/usecase"
	uploadDelivery "vrikzo-backend/internal/upload/delivery"
	userDelivery "vrikzo-backend/internal/user/delivery"
	userRepo "vrikzo-backend/internal/user/repository"
	"vrikzo-backend/pkg/config"
)

type Handler struct {
	reminderHandler *reminderDelivery.ReminderHandler
	userHandler     *userDelivery.UserHandler
	chatHandler     *chatDelivery.ChatHandler
	detectHandler   *detectDelivery.DetectHandler
	uploadHandler   *uploadDelivery.UploadHandler
}

func NewHandler(
	reminderUc reminderUsecase.ReminderUsecase,
	userRepository userRepo.EmailUserRepository,
	chatUc *chatUsecase.ChatUsecase,
	detectUc *detectUsecase.DetectUsecase,
	cfg *config.Config,
) *Handler {
	return &Handler{
		reminderHandler: reminderDelivery.NewReminderHandler(reminderUc),
		userHandler:     userDelivery.NewUserHandler(userRepository),
		chatHandler:     chatDelivery.NewChatHandler(chatUc),
		detectHandler:   detectDelivery.NewDetectHandler(detectUc),
		uploadHandler:   uploadDelivery.NewUploadHandler(cfg.UploadDir),
	}
}

// Engine builds the gin engine with middleware and routes. The caller
// owns the http.Server so it can shut down gracefully.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)
	return r
}

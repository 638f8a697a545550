package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "vrikzo-backend/cmd/api"
	chatUsecase "vrikzo-backend/internal/chat/usecase"
	detectUsecase "vrikzo-backend/internal/detect/usecase"
	"vrikzo-backend/internal/reminder/composer"
	reminderDomain "vrikzo-backend/internal/reminder/domain"
	reminderRepo "vrikzo-backend/internal/reminder/repository"
	"vrikzo-backend/internal/reminder/scheduler"
	reminderUsecase "vrikzo-backend/internal/reminder/usecase"
	userDomain "vrikzo-backend/internal/user/domain"
	userRepo "vrikzo-backend/internal/user/repository"
	"vrikzo-backend/pkg/ai"
	"vrikzo-backend/pkg/config"
	"vrikzo-backend/pkg/database"
	"vrikzo-backend/pkg/gemini"
	"vrikzo-backend/pkg/mailer"
	"vrikzo-backend/pkg/weather"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&reminderDomain.Reminder{}, &userDomain.EmailUser{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	reminders := reminderRepo.NewGormReminderRepository(db)
	users := userRepo.NewGormEmailUserRepository(db)

	// Text generation is optional; everything that uses it has a
	// static fallback path.
	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		generator = gemini.NewService(cfg.GeminiAPIKey)
	} else {
		log.Println("[WARN] GEMINI_API_KEY not configured, using static templates only")
	}

	var weatherProvider chatUsecase.WeatherProvider
	if cfg.WeatherAPIKey != "" {
		weatherProvider = weather.NewClient(cfg.WeatherAPIKey)
	} else {
		log.Println("[WARN] WEATHER_API_KEY not configured, chat runs without weather context")
	}

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		log.Println("[WARN] SMTP config missing. Set SMTP_HOST, SMTP_USER, SMTP_PASS in .env")
	}
	sender := mailer.NewSMTPSender(cfg)

	// Initialize use cases
	reminderUc := reminderUsecase.NewReminderUsecase(reminders, users)
	chatUc := chatUsecase.NewChatUsecase(generator, weatherProvider)
	detectUc := detectUsecase.NewDetectUsecase(cfg.ModelURL, generator)

	// Start the reminder scheduler
	sched := scheduler.New(reminders, composer.New(generator), sender)
	if err := sched.Start(); err != nil {
		log.Fatal("Failed to start reminder scheduler:", err)
	}

	// Initialize HTTP handler
	handler := api.NewHandler(reminderUc, users, chatUc, detectUc, cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Engine(),
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	waitForShutdown(server, sched)
}

func waitForShutdown(server *http.Server, sched *scheduler.ReminderScheduler) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	sched.Stop()
}

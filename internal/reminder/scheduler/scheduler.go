package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"vrikzo-backend/internal/reminder/composer"
	"vrikzo-backend/internal/reminder/domain"
	"vrikzo-backend/internal/reminder/repository"
	"vrikzo-backend/pkg/mailer"
)

// ReminderScheduler drives one-shot reminder dispatch. Every minute it
// looks up the reminders scheduled for exactly that minute, emails each
// one sequentially, and removes the record after the attempt.
type ReminderScheduler struct {
	repo     repository.ReminderRepository
	composer *composer.Composer
	sender   mailer.Sender
	cron     *cron.Cron

	now         func() time.Time
	sendTimeout time.Duration
}

// New creates a scheduler wired to the given store, composer, and mail
// transport. It does nothing until Start is called.
func New(repo repository.ReminderRepository, comp *composer.Composer, sender mailer.Sender) *ReminderScheduler {
	return &ReminderScheduler{
		repo:        repo,
		composer:    comp,
		sender:      sender,
		cron:        cron.New(),
		now:         time.Now,
		sendTimeout: 30 * time.Second,
	}
}

// Start registers the every-minute job and starts the cron loop.
func (s *ReminderScheduler) Start() error {
	_, err := s.cron.AddFunc("* * * * *", func() {
		s.RunTick(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Println("[Scheduler] Reminder scheduler started (interval: 1 minute)")
	return nil
}

// Stop stops the cron loop and waits for a running tick to finish.
func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[Scheduler] Reminder scheduler stopped")
}

// RunTick processes all reminders due in the current minute. A failure
// on one reminder is logged and does not stop the rest of the batch.
func (s *ReminderScheduler) RunTick(ctx context.Context) {
	minuteStart := s.now().Truncate(time.Minute)

	due, err := s.repo.FindDue(minuteStart)
	if err != nil {
		log.Printf("[Scheduler] Error finding due reminders: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	log.Printf("[Scheduler] Found %d due reminders for %s", len(due), minuteStart.Format(time.RFC3339))

	// Sequential on purpose: one slow mail relay must not turn into a
	// burst of parallel connections against it.
	for _, rem := range due {
		s.dispatch(ctx, rem)
	}
}

func (s *ReminderScheduler) dispatch(ctx context.Context, rem *domain.Reminder) {
	text, html := s.composer.Compose(ctx, rem.PlantName, rem.Action, rem.RemedyText)

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	err := s.sender.Send(sendCtx, mailer.Message{
		To:      rem.Email,
		Subject: fmt.Sprintf("🌱 Reminder: %s — %s", rem.Action.Label(), rem.PlantName),
		Text:    text,
		HTML:    html,
	})
	cancel()

	if err != nil {
		log.Printf("[Scheduler] Error sending %s reminder to %s (%s): %v", rem.Action, rem.Email, rem.PlantName, err)
	} else {
		log.Printf("[Scheduler] Sent %s reminder to %s (%s)", rem.Action, rem.Email, rem.PlantName)
	}

	// One-shot semantics: the record goes away after the attempt,
	// whether or not delivery succeeded.
	if err := s.repo.Delete(rem.ID); err != nil {
		log.Printf("[Scheduler] Error deleting reminder %s: %v", rem.ID, err)
	}
}

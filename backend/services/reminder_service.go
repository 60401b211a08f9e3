package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
)

const (
	ReminderTaskDue         = "task_due"
	ReminderSessionUpcoming = "session_upcoming"

	reminderWindow = 24 * time.Hour
)

// ReminderService creates unread reminders for tasks due soon and for booked
// sessions starting soon. It runs from the cron scheduler, never from a
// request handler.
type ReminderService struct {
	store  storage.Storage
	logger *log.Logger
}

func NewReminderService(store storage.Storage, logger *log.Logger) *ReminderService {
	return &ReminderService{store: store, logger: logger}
}

// Run produces reminders for every user with reminders enabled. Errors for one
// user are logged and do not stop the sweep.
func (s *ReminderService) Run(ctx context.Context, now time.Time) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.logger.Printf("reminder sweep: %v", err)
		return
	}

	for _, user := range users {
		if !s.remindersEnabled(ctx, user.ID) {
			continue
		}
		if err := s.remindUser(ctx, user.ID, now); err != nil {
			s.logger.Printf("reminder sweep: user %d: %v", user.ID, err)
		}
	}
}

func (s *ReminderService) remindersEnabled(ctx context.Context, userID uint) bool {
	prefs, err := s.store.GetUserPreferences(ctx, userID)
	if err != nil {
		// No preference row means the default applies.
		return true
	}
	return prefs.ReminderEnabled
}

func (s *ReminderService) remindUser(ctx context.Context, userID uint, now time.Time) error {
	existing, err := s.store.GetUserReminders(ctx, userID, false)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, reminder := range existing {
		if reminder.CreatedAt.YearDay() == now.YearDay() && reminder.CreatedAt.Year() == now.Year() {
			seen[reminder.Type+"|"+reminder.Title] = true
		}
	}

	completed := false
	tasks, err := s.store.GetTasks(ctx, userID, storage.TaskFilters{Completed: &completed})
	if err != nil {
		return err
	}
	deadline := now.Add(reminderWindow)
	for _, task := range tasks {
		if task.DueDate == nil || task.DueDate.After(deadline) || task.DueDate.Before(now) {
			continue
		}
		title := fmt.Sprintf("Task due soon: %s", task.Title)
		if seen[ReminderTaskDue+"|"+title] {
			continue
		}
		reminder := models.UserReminder{
			Type:    ReminderTaskDue,
			Title:   title,
			Message: fmt.Sprintf("%q is due at %s.", task.Title, task.DueDate.Format("15:04, Jan 2")),
		}
		if err := s.store.CreateReminder(ctx, userID, &reminder); err != nil {
			return err
		}
	}

	bookings, err := s.store.GetUserBookings(ctx, userID)
	if err != nil {
		return err
	}
	for _, booking := range bookings {
		if booking.Status != models.BookingBooked {
			continue
		}
		start := booking.SessionInfo.StartTime
		if start.Before(now) || start.After(deadline) {
			continue
		}
		title := fmt.Sprintf("Upcoming class: %s", booking.ClassInfo.Title)
		if seen[ReminderSessionUpcoming+"|"+title] {
			continue
		}
		reminder := models.UserReminder{
			Type:    ReminderSessionUpcoming,
			Title:   title,
			Message: fmt.Sprintf("Your %s session starts at %s.", booking.ClassInfo.Language, start.Format("15:04, Jan 2")),
		}
		if err := s.store.CreateReminder(ctx, userID, &reminder); err != nil {
			return err
		}
	}

	return nil
}

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"

	"gorm.io/gorm/clause"
)

func (s *DatabaseStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *DatabaseStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpsertUser inserts the user or, when a row with the same email exists,
// updates the profile fields and refreshes updated_at.
func (s *DatabaseStorage) UpsertUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"display_name": user.DisplayName,
			"avatar_url":   user.AvatarURL,
			"updated_at":   time.Now(),
		}),
	}).Create(user).Error
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (s *DatabaseStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *DatabaseStorage) GetUserReminders(ctx context.Context, userID uint, unreadOnly bool) ([]models.UserReminder, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var reminders []models.UserReminder
	if err := query.Order("created_at DESC").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

func (s *DatabaseStorage) CreateReminder(ctx context.Context, userID uint, reminder *models.UserReminder) error {
	reminder.UserID = userID
	if err := s.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return nil
}

func (s *DatabaseStorage) MarkReminderAsRead(ctx context.Context, reminderID, userID uint) error {
	res := s.db.WithContext(ctx).Model(&models.UserReminder{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("mark reminder read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DatabaseStorage) GetUserPreferences(ctx context.Context, userID uint) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, translate(err)
	}
	return &prefs, nil
}

// UpsertUserPreferences creates or replaces the user's singleton preference row.
func (s *DatabaseStorage) UpsertUserPreferences(ctx context.Context, userID uint, prefs *models.UserPreferences) error {
	prefs.UserID = userID

	var existing models.UserPreferences
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error
	if err != nil {
		if translate(err) != ErrNotFound {
			return fmt.Errorf("load preferences: %w", err)
		}
		if err := s.db.WithContext(ctx).Create(prefs).Error; err != nil {
			return fmt.Errorf("create preferences: %w", err)
		}
		return nil
	}

	prefs.ID = existing.ID
	prefs.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(prefs).Error; err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"

	"gorm.io/gorm"
)

// GetUserBookings returns the user's bookings joined with session and class,
// newest session first.
func (s *DatabaseStorage) GetUserBookings(ctx context.Context, userID uint) ([]models.BookingDetails, error) {
	var bookings []models.UserBooking
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if len(bookings) == 0 {
		return []models.BookingDetails{}, nil
	}

	sessionIDs := make([]uint, 0, len(bookings))
	for _, booking := range bookings {
		sessionIDs = append(sessionIDs, booking.SessionID)
	}
	var sessions []models.ClassSession
	if err := s.db.WithContext(ctx).Where("id IN ?", sessionIDs).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("load booked sessions: %w", err)
	}
	sessionByID := make(map[uint]models.ClassSession, len(sessions))
	classIDs := make([]uint, 0, len(sessions))
	for _, session := range sessions {
		sessionByID[session.ID] = session
		classIDs = append(classIDs, session.ClassID)
	}

	var classes []models.LanguageClass
	if err := s.db.WithContext(ctx).Where("id IN ?", classIDs).Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("load booked classes: %w", err)
	}
	classByID := make(map[uint]models.LanguageClass, len(classes))
	for _, class := range classes {
		classByID[class.ID] = class
	}

	result := make([]models.BookingDetails, 0, len(bookings))
	for _, booking := range bookings {
		session := sessionByID[booking.SessionID]
		result = append(result, models.BookingDetails{
			UserBooking: booking,
			SessionInfo: session,
			ClassInfo:   classByID[session.ClassID],
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SessionInfo.StartTime.After(result[j].SessionInfo.StartTime)
	})
	return result, nil
}

// CreateBooking inserts the booking and takes one spot from the session in a
// single transaction. The decrement is conditional on remaining capacity, so
// available_spots can never go negative even under concurrent attempts for
// the last spot.
func (s *DatabaseStorage) CreateBooking(ctx context.Context, userID uint, booking *models.UserBooking) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.ClassSession
		if err := tx.First(&session, booking.SessionID).Error; err != nil {
			return translate(err)
		}

		res := tx.Model(&models.ClassSession{}).
			Where("id = ? AND available_spots > 0", booking.SessionID).
			UpdateColumn("available_spots", gorm.Expr("available_spots - 1"))
		if res.Error != nil {
			return fmt.Errorf("take spot: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNoSpots
		}

		booking.UserID = userID
		booking.Status = models.BookingBooked
		if booking.BookedAt.IsZero() {
			booking.BookedAt = time.Now()
		}
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
}

// CancelBooking sets the booking cancelled and returns its spot, atomically.
// Cancelling an already-cancelled booking is a no-op and does not touch the
// counter a second time.
func (s *DatabaseStorage) CancelBooking(ctx context.Context, bookingID, userID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.UserBooking
		if err := tx.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error; err != nil {
			return translate(err)
		}
		if booking.Status == models.BookingCancelled {
			return nil
		}

		if err := tx.Model(&booking).Update("status", models.BookingCancelled).Error; err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		if err := tx.Model(&models.ClassSession{}).
			Where("id = ?", booking.SessionID).
			UpdateColumn("available_spots", gorm.Expr("available_spots + 1")).Error; err != nil {
			return fmt.Errorf("return spot: %w", err)
		}
		return nil
	})
}

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"
)

// GetLanguageClasses lists active classes matching the filters, each enriched
// with its next scheduled session. The enrichment is one batched window query
// over all class IDs rather than a lookup per class.
func (s *DatabaseStorage) GetLanguageClasses(ctx context.Context, filters ClassFilters) ([]models.ClassWithNextSession, error) {
	query := s.db.WithContext(ctx).Where("is_active = ?", true)

	if filters.Language != "" {
		query = query.Where("language = ?", filters.Language)
	}
	if filters.Level != "" {
		query = query.Where("level = ?", filters.Level)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Location != "" {
		query = query.Where("location LIKE ?", "%"+filters.Location+"%")
	}
	if filters.MaxPrice > 0 {
		query = query.Where("price <= ?", filters.MaxPrice)
	}

	var classes []models.LanguageClass
	if err := query.Order("title ASC").Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	if len(classes) == 0 {
		return []models.ClassWithNextSession{}, nil
	}

	classIDs := make([]uint, len(classes))
	for i, class := range classes {
		classIDs[i] = class.ID
	}

	var sessions []models.ClassSession
	if err := s.db.WithContext(ctx).
		Where("class_id IN ? AND start_time >= ? AND status = ?", classIDs, time.Now(), models.SessionScheduled).
		Order("class_id ASC, start_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list next sessions: %w", err)
	}

	// Sessions arrive ordered by start time per class; keep only the first.
	nextByClass := make(map[uint]models.ClassSession, len(classIDs))
	for _, session := range sessions {
		if _, seen := nextByClass[session.ClassID]; !seen {
			nextByClass[session.ClassID] = session
		}
	}

	result := make([]models.ClassWithNextSession, 0, len(classes))
	for _, class := range classes {
		enriched := models.ClassWithNextSession{LanguageClass: class}
		if next, ok := nextByClass[class.ID]; ok {
			session := next
			enriched.NextSession = &session
			enriched.AvailableSpots = session.AvailableSpots
		}
		result = append(result, enriched)
	}
	return result, nil
}

func (s *DatabaseStorage) GetLanguageClass(ctx context.Context, id uint) (*models.LanguageClass, error) {
	var class models.LanguageClass
	if err := s.db.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, translate(err)
	}
	return &class, nil
}

func (s *DatabaseStorage) CreateLanguageClass(ctx context.Context, class *models.LanguageClass) error {
	if err := s.db.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

func (s *DatabaseStorage) GetClassSessions(ctx context.Context, classID uint) ([]models.ClassSession, error) {
	var sessions []models.ClassSession
	if err := s.db.WithContext(ctx).Where("class_id = ?", classID).
		Order("start_time ASC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// GetUpcomingSessions returns scheduled sessions of active classes joined with
// their class offering, earliest first.
func (s *DatabaseStorage) GetUpcomingSessions(ctx context.Context, filters SessionFilters) ([]models.SessionWithClass, error) {
	start := time.Now()
	if filters.StartDate != nil {
		start = *filters.StartDate
	}

	query := s.db.WithContext(ctx).Model(&models.ClassSession{}).
		Joins("JOIN language_classes ON language_classes.id = class_sessions.class_id").
		Where("class_sessions.start_time >= ?", start).
		Where("class_sessions.status = ?", models.SessionScheduled).
		Where("language_classes.is_active = ?", true)

	if filters.EndDate != nil {
		query = query.Where("class_sessions.start_time <= ?", *filters.EndDate)
	}
	if filters.Language != "" {
		query = query.Where("language_classes.language = ?", filters.Language)
	}

	var sessions []models.ClassSession
	if err := query.Order("class_sessions.start_time ASC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list upcoming sessions: %w", err)
	}
	if len(sessions) == 0 {
		return []models.SessionWithClass{}, nil
	}

	classIDs := make([]uint, 0, len(sessions))
	for _, session := range sessions {
		classIDs = append(classIDs, session.ClassID)
	}
	var classes []models.LanguageClass
	if err := s.db.WithContext(ctx).Where("id IN ?", classIDs).Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("load session classes: %w", err)
	}
	classByID := make(map[uint]models.LanguageClass, len(classes))
	for _, class := range classes {
		classByID[class.ID] = class
	}

	result := make([]models.SessionWithClass, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, models.SessionWithClass{
			ClassSession: session,
			ClassInfo:    classByID[session.ClassID],
		})
	}
	return result, nil
}

func (s *DatabaseStorage) CreateClassSession(ctx context.Context, session *models.ClassSession) error {
	if session.Status == "" {
		session.Status = models.SessionScheduled
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

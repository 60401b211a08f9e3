package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"
)

func (s *DatabaseStorage) GetTasks(ctx context.Context, userID uint, filters TaskFilters) ([]models.Task, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if filters.Completed != nil {
		query = query.Where("completed = ?", *filters.Completed)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Priority != "" {
		query = query.Where("priority = ?", filters.Priority)
	}

	var tasks []models.Task
	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *DatabaseStorage) GetTask(ctx context.Context, id, userID uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (s *DatabaseStorage) CreateTask(ctx context.Context, userID uint, task *models.Task) error {
	task.UserID = userID
	task.Completed = false
	task.CompletedAt = nil
	if task.Category == "" {
		task.Category = models.CategoryGeneral
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.EstimatedMinutes <= 0 {
		task.EstimatedMinutes = 30
	}
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (s *DatabaseStorage) UpdateTask(ctx context.Context, id, userID uint, updates TaskUpdates) (*models.Task, error) {
	fields := map[string]interface{}{}
	if updates.Title != nil {
		fields["title"] = *updates.Title
	}
	if updates.Description != nil {
		fields["description"] = *updates.Description
	}
	if updates.Category != nil {
		fields["category"] = *updates.Category
	}
	if updates.Priority != nil {
		fields["priority"] = *updates.Priority
	}
	if updates.EstimatedMinutes != nil {
		fields["estimated_minutes"] = *updates.EstimatedMinutes
	}
	if updates.Completed != nil {
		fields["completed"] = *updates.Completed
	}
	if updates.DueDate != nil {
		fields["due_date"] = *updates.DueDate
	}

	if len(fields) > 0 {
		res := s.db.WithContext(ctx).Model(&models.Task{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(fields)
		if res.Error != nil {
			return nil, fmt.Errorf("update task: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return s.GetTask(ctx, id, userID)
}

func (s *DatabaseStorage) DeleteTask(ctx context.Context, id, userID uint) (bool, error) {
	// Hard delete; tasks are not soft-deleted.
	res := s.db.WithContext(ctx).Unscoped().Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	if res.Error != nil {
		return false, fmt.Errorf("delete task: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CompleteTask marks the task completed and stamps completed_at. The update
// is conditional on completed = false, so repeated or racing completes keep
// the first completion instant.
func (s *DatabaseStorage) CompleteTask(ctx context.Context, id, userID uint) (*models.Task, error) {
	res := s.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_id = ? AND completed = ?", id, userID, false).
		Updates(map[string]interface{}{"completed": true, "completed_at": time.Now()})
	if res.Error != nil {
		return nil, fmt.Errorf("complete task: %w", res.Error)
	}

	// Zero rows means already completed or missing; GetTask tells them apart.
	return s.GetTask(ctx, id, userID)
}

// GetTaskStats aggregates one user's tasks in a single pass.
func (s *DatabaseStorage) GetTaskStats(ctx context.Context, userID uint) (*models.TaskStats, error) {
	tasks, err := s.GetTasks(ctx, userID, TaskFilters{})
	if err != nil {
		return nil, err
	}

	stats := &models.TaskStats{
		CategoryStats: make(map[string]models.CategoryCount),
	}
	for _, task := range tasks {
		stats.TotalTasks++
		stats.TotalMinutes += task.EstimatedMinutes

		count := stats.CategoryStats[string(task.Category)]
		count.Total++
		if task.Completed {
			stats.CompletedTasks++
			count.Completed++
		}
		stats.CategoryStats[string(task.Category)] = count
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	return stats, nil
}

func (s *DatabaseStorage) GetTaskCollections(ctx context.Context, userID uint) ([]models.TaskCollection, error) {
	var collections []models.TaskCollection
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("generated_at DESC").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

func (s *DatabaseStorage) CreateTaskCollection(ctx context.Context, userID uint, collection *models.TaskCollection) error {
	collection.UserID = userID
	if collection.GeneratedAt.IsZero() {
		collection.GeneratedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(collection).Error; err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskCategory string

const (
	CategoryGeneral  TaskCategory = "general"
	CategoryWork     TaskCategory = "work"
	CategoryLearning TaskCategory = "learning"
	CategoryPersonal TaskCategory = "personal"
	CategoryHealth   TaskCategory = "health"
	CategoryFinance  TaskCategory = "finance"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryGeneral, CategoryWork, CategoryLearning, CategoryPersonal, CategoryHealth, CategoryFinance:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	gorm.Model
	UserID           uint         `gorm:"not null;index" json:"userId"`
	Title            string       `gorm:"not null" json:"title"`
	Description      string       `json:"description"`
	Category         TaskCategory `gorm:"type:varchar(16);default:general" json:"category"`
	Priority         TaskPriority `gorm:"type:varchar(16);default:medium" json:"priority"`
	EstimatedMinutes int          `gorm:"default:30" json:"estimatedMinutes"`
	Completed        bool         `gorm:"default:false" json:"completed"`
	CompletedAt      *time.Time   `json:"completedAt"`
	DueDate          *time.Time   `json:"dueDate"`
}

type TaskCollection struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Topic       string    `json:"topic"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// TaskStats is the aggregate view over one user's tasks.
type TaskStats struct {
	TotalTasks     int                      `json:"totalTasks"`
	CompletedTasks int                      `json:"completedTasks"`
	TotalMinutes   int                      `json:"totalMinutes"`
	CompletionRate float64                  `json:"completionRate"`
	CategoryStats  map[string]CategoryCount `json:"categoryStats"`
}

type CategoryCount struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both missing rows and rows owned by another user.
	ErrNotFound = errors.New("record not found")
	// ErrNoSpots is returned when a session has no remaining capacity.
	ErrNoSpots = errors.New("no available spots")
)

// TaskFilters narrow GetTasks with AND semantics; nil/empty means no constraint.
type TaskFilters struct {
	Completed *bool
	Category  models.TaskCategory
	Priority  models.TaskPriority
}

// TaskUpdates carries a partial update; nil fields are left untouched.
type TaskUpdates struct {
	Title            *string
	Description      *string
	Category         *models.TaskCategory
	Priority         *models.TaskPriority
	EstimatedMinutes *int
	Completed        *bool
	DueDate          *time.Time
}

type ClassFilters struct {
	Language string
	Level    models.ClassLevel
	Type     models.ClassType
	Location string
	MaxPrice int
}

type SessionFilters struct {
	Language  string
	StartDate *time.Time
	EndDate   *time.Time
}

// Storage is the single owner of database reads and writes. Controllers
// receive it as an injected dependency so tests can swap the backing DB.
type Storage interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)

	GetTasks(ctx context.Context, userID uint, filters TaskFilters) ([]models.Task, error)
	GetTask(ctx context.Context, id, userID uint) (*models.Task, error)
	CreateTask(ctx context.Context, userID uint, task *models.Task) error
	UpdateTask(ctx context.Context, id, userID uint, updates TaskUpdates) (*models.Task, error)
	DeleteTask(ctx context.Context, id, userID uint) (bool, error)
	CompleteTask(ctx context.Context, id, userID uint) (*models.Task, error)
	GetTaskStats(ctx context.Context, userID uint) (*models.TaskStats, error)

	GetTaskCollections(ctx context.Context, userID uint) ([]models.TaskCollection, error)
	CreateTaskCollection(ctx context.Context, userID uint, collection *models.TaskCollection) error

	GetLanguageClasses(ctx context.Context, filters ClassFilters) ([]models.ClassWithNextSession, error)
	GetLanguageClass(ctx context.Context, id uint) (*models.LanguageClass, error)
	CreateLanguageClass(ctx context.Context, class *models.LanguageClass) error
	GetClassSessions(ctx context.Context, classID uint) ([]models.ClassSession, error)
	GetUpcomingSessions(ctx context.Context, filters SessionFilters) ([]models.SessionWithClass, error)
	CreateClassSession(ctx context.Context, session *models.ClassSession) error

	GetUserBookings(ctx context.Context, userID uint) ([]models.BookingDetails, error)
	CreateBooking(ctx context.Context, userID uint, booking *models.UserBooking) error
	CancelBooking(ctx context.Context, bookingID, userID uint) error

	GetUserReminders(ctx context.Context, userID uint, unreadOnly bool) ([]models.UserReminder, error)
	CreateReminder(ctx context.Context, userID uint, reminder *models.UserReminder) error
	MarkReminderAsRead(ctx context.Context, reminderID, userID uint) error

	GetUserPreferences(ctx context.Context, userID uint) (*models.UserPreferences, error)
	UpsertUserPreferences(ctx context.Context, userID uint, prefs *models.UserPreferences) error
}

// DatabaseStorage implements Storage on top of GORM.
type DatabaseStorage struct {
	db *gorm.DB
}

func NewDatabaseStorage(db *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

var _ Storage = (*DatabaseStorage)(nil)

// translate maps GORM's not-found onto the storage sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

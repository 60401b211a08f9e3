package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/models"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ClassesController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewClassesController(store storage.Storage, cfg *config.Config) *ClassesController {
	return &ClassesController{Store: store, Cfg: cfg}
}

func (cc *ClassesController) GetClasses(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c)
	}

	filters := storage.ClassFilters{
		Language: c.Query("language"),
		Location: c.Query("location"),
		MaxPrice: c.QueryInt("maxPrice"),
	}
	if level := models.ClassLevel(c.Query("level")); level != "" {
		if !level.Valid() {
			return utils.BadRequest(c, "Invalid level")
		}
		filters.Level = level
	}
	if classType := models.ClassType(c.Query("type")); classType != "" {
		if !classType.Valid() {
			return utils.BadRequest(c, "Invalid type")
		}
		filters.Type = classType
	}

	classes, err := cc.Store.GetLanguageClasses(c.Context(), filters)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch classes")
	}
	return c.JSON(classes)
}

func (cc *ClassesController) GetClass(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c)
	}

	classID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	class, err := cc.Store.GetLanguageClass(c.Context(), uint(classID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Class not found")
		}
		return utils.InternalServerError(c, "Failed to fetch class")
	}
	return c.JSON(class)
}

func (cc *ClassesController) CreateClass(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c)
	}

	var class models.LanguageClass
	if err := c.BodyParser(&class); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if class.Title == "" || class.Language == "" {
		return utils.BadRequest(c, "Title and language are required")
	}
	if class.Level != "" && !class.Level.Valid() {
		return utils.BadRequest(c, "Invalid level")
	}
	if class.Type != "" && !class.Type.Valid() {
		return utils.BadRequest(c, "Invalid type")
	}

	class.ID = 0
	class.IsActive = true
	if err := cc.Store.CreateLanguageClass(c.Context(), &class); err != nil {
		return utils.InternalServerError(c, "Failed to create class")
	}
	return utils.Created(c, class)
}

func (cc *ClassesController) GetClassSessions(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c)
	}

	classID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	if _, err := cc.Store.GetLanguageClass(c.Context(), uint(classID)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Class not found")
		}
		return utils.InternalServerError(c, "Failed to fetch class")
	}

	sessions, err := cc.Store.GetClassSessions(c.Context(), uint(classID))
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch sessions")
	}
	return c.JSON(sessions)
}

func (cc *ClassesController) CreateClassSession(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c)
	}

	classID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	class, err := cc.Store.GetLanguageClass(c.Context(), uint(classID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Class not found")
		}
		return utils.InternalServerError(c, "Failed to fetch class")
	}

	type SessionInput struct {
		StartTime        time.Time `json:"startTime"`
		EndTime          time.Time `json:"endTime"`
		AvailableSpots   *int      `json:"availableSpots"`
		IsRecurring      bool      `json:"isRecurring"`
		RecurringPattern string    `json:"recurringPattern"`
	}

	var input SessionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.StartTime.IsZero() {
		return utils.BadRequest(c, "Start time is required")
	}

	// New sessions default to the class capacity.
	spots := class.MaxStudents
	if input.AvailableSpots != nil {
		if *input.AvailableSpots < 0 {
			return utils.BadRequest(c, "Available spots cannot be negative")
		}
		spots = *input.AvailableSpots
	}

	session := models.ClassSession{
		ClassID:          uint(classID),
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		AvailableSpots:   spots,
		IsRecurring:      input.IsRecurring,
		RecurringPattern: input.RecurringPattern,
		Status:           models.SessionScheduled,
	}
	if err := cc.Store.CreateClassSession(c.Context(), &session); err != nil {
		return utils.InternalServerError(c, "Failed to create session")
	}
	return utils.Created(c, session)
}

func (cc *ClassesController) GetUpcomingSessions(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c)
	}

	filters := storage.SessionFilters{Language: c.Query("language")}
	if raw := c.Query("startDate"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequest(c, "Invalid startDate")
		}
		filters.StartDate = &start
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequest(c, "Invalid endDate")
		}
		filters.EndDate = &end
	}

	sessions, err := cc.Store.GetUpcomingSessions(c.Context(), filters)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch sessions")
	}
	return c.JSON(sessions)
}

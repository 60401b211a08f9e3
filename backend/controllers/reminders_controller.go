package controllers

import (
	"errors"
	"strconv"

	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type RemindersController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewRemindersController(store storage.Storage, cfg *config.Config) *RemindersController {
	return &RemindersController{Store: store, Cfg: cfg}
}

func (rc *RemindersController) GetReminders(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	unreadOnly := c.Query("unread") == "true"
	reminders, err := rc.Store.GetUserReminders(c.Context(), userID, unreadOnly)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch reminders")
	}
	return c.JSON(reminders)
}

func (rc *RemindersController) MarkRead(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	reminderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid reminder ID")
	}

	if err := rc.Store.MarkReminderAsRead(c.Context(), uint(reminderID), userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Reminder not found")
		}
		return utils.InternalServerError(c, "Failed to update reminder")
	}
	return c.JSON(fiber.Map{"message": "Reminder marked as read"})
}

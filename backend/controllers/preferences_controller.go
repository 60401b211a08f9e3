package controllers

import (
	"errors"

	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/models"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type PreferencesController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewPreferencesController(store storage.Storage, cfg *config.Config) *PreferencesController {
	return &PreferencesController{Store: store, Cfg: cfg}
}

func (pc *PreferencesController) GetPreferences(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	prefs, err := pc.Store.GetUserPreferences(c.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Preferences not found")
		}
		return utils.InternalServerError(c, "Failed to fetch preferences")
	}
	return c.JSON(prefs)
}

func (pc *PreferencesController) UpdatePreferences(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	type PreferencesInput struct {
		PreferredLanguages string `json:"preferredLanguages"`
		ReminderEnabled    *bool  `json:"reminderEnabled"`
		ReminderTime       string `json:"reminderTime"`
		Timezone           string `json:"timezone"`
	}

	var input PreferencesInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	prefs := models.UserPreferences{
		PreferredLanguages: input.PreferredLanguages,
		ReminderEnabled:    true,
		ReminderTime:       input.ReminderTime,
		Timezone:           input.Timezone,
	}
	if input.ReminderEnabled != nil {
		prefs.ReminderEnabled = *input.ReminderEnabled
	}
	if prefs.ReminderTime == "" {
		prefs.ReminderTime = "09:00"
	}
	if prefs.Timezone == "" {
		prefs.Timezone = "UTC"
	}

	if err := pc.Store.UpsertUserPreferences(c.Context(), userID, &prefs); err != nil {
		return utils.InternalServerError(c, "Failed to save preferences")
	}
	return c.JSON(prefs)
}

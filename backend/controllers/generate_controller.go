package controllers

import (
	"github.com/Akshaya719/LanguageLearningHub/backend/ai"
	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type GenerateController struct {
	Store storage.Storage
	Gen   ai.Generator
	Cfg   *config.Config
}

func NewGenerateController(store storage.Storage, gen ai.Generator, cfg *config.Config) *GenerateController {
	return &GenerateController{Store: store, Gen: gen, Cfg: cfg}
}

// GenerateTasks asks the model for five tasks on the requested topic. The
// generated tasks are returned unsaved; the client persists the ones it keeps.
func (gc *GenerateController) GenerateTasks(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, gc.Cfg); err != nil {
		return utils.Unauthorized(c)
	}

	type GenerateInput struct {
		Topic string `json:"topic"`
	}

	var input GenerateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Topic == "" {
		return utils.BadRequest(c, "Topic is required")
	}

	tasks, err := gc.Gen.GenerateTasksFromTopic(c.Context(), input.Topic)
	if err != nil {
		return utils.InternalServerError(c, "Failed to generate tasks")
	}
	return c.JSON(tasks)
}

// GetSuggestions proposes follow-up topics from the user's most recently
// completed tasks. Generation failures degrade to an empty list.
func (gc *GenerateController) GetSuggestions(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, gc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	completed := true
	tasks, err := gc.Store.GetTasks(c.Context(), userID, storage.TaskFilters{Completed: &completed})
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch tasks")
	}

	titles := make([]string, 0, 10)
	for _, task := range tasks {
		if len(titles) == 10 {
			break
		}
		titles = append(titles, task.Title)
	}

	suggestions := gc.Gen.GenerateTaskSuggestions(c.Context(), titles)
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

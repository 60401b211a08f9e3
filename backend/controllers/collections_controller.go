package controllers

import (
	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/models"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CollectionsController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewCollectionsController(store storage.Storage, cfg *config.Config) *CollectionsController {
	return &CollectionsController{Store: store, Cfg: cfg}
}

func (cc *CollectionsController) GetCollections(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	collections, err := cc.Store.GetTaskCollections(c.Context(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch collections")
	}
	return c.JSON(collections)
}

func (cc *CollectionsController) CreateCollection(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	type CollectionInput struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Topic       string `json:"topic"`
	}

	var input CollectionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" {
		return utils.BadRequest(c, "Name is required")
	}

	collection := models.TaskCollection{
		Name:        input.Name,
		Description: input.Description,
		Topic:       input.Topic,
	}
	if err := cc.Store.CreateTaskCollection(c.Context(), userID, &collection); err != nil {
		return utils.InternalServerError(c, "Failed to create collection")
	}
	return utils.Created(c, collection)
}

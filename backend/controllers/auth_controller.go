package controllers

import (
	"errors"

	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/models"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewAuthController(store storage.Storage, cfg *config.Config) *AuthController {
	return &AuthController{Store: store, Cfg: cfg}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"displayName"`
		AvatarURL   string `json:"avatarUrl"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	if _, err := ac.Store.GetUserByEmail(c.Context(), input.Email); err == nil {
		return utils.BadRequest(c, "Email already registered")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		DisplayName:  input.DisplayName,
		AvatarURL:    input.AvatarURL,
	}
	if err := ac.Store.UpsertUser(c.Context(), &user); err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Store.GetUserByEmail(c.Context(), input.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.Fail(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	// Login refreshes updated_at through the same upsert path registration uses.
	if err := ac.Store.UpsertUser(c.Context(), user); err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (ac *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	user, err := ac.Store.GetUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(user)
}

package controllers

import (
	"errors"
	"strconv"

	"github.com/Akshaya719/LanguageLearningHub/backend/config"
	"github.com/Akshaya719/LanguageLearningHub/backend/models"
	"github.com/Akshaya719/LanguageLearningHub/backend/storage"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type BookingsController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewBookingsController(store storage.Storage, cfg *config.Config) *BookingsController {
	return &BookingsController{Store: store, Cfg: cfg}
}

func (bc *BookingsController) GetBookings(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, bc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	bookings, err := bc.Store.GetUserBookings(c.Context(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch bookings")
	}
	return c.JSON(bookings)
}

func (bc *BookingsController) CreateBooking(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, bc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	type BookingInput struct {
		SessionID uint   `json:"sessionId"`
		Notes     string `json:"notes"`
	}

	var input BookingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.SessionID == 0 {
		return utils.BadRequest(c, "Session ID is required")
	}

	booking := models.UserBooking{
		SessionID: input.SessionID,
		Notes:     input.Notes,
	}
	if err := bc.Store.CreateBooking(c.Context(), userID, &booking); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Session not found")
		}
		if errors.Is(err, storage.ErrNoSpots) {
			return utils.Conflict(c, "No available spots for this session")
		}
		return utils.InternalServerError(c, "Failed to create booking")
	}
	return utils.Created(c, booking)
}

func (bc *BookingsController) CancelBooking(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, bc.Cfg)
	if err != nil {
		return utils.Unauthorized(c)
	}

	bookingID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid booking ID")
	}

	if err := bc.Store.CancelBooking(c.Context(), uint(bookingID), userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Booking not found")
		}
		return utils.InternalServerError(c, "Failed to cancel booking")
	}
	return c.JSON(fiber.Map{"message": "Booking cancelled"})
}

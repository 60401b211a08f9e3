package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the uniform error payload. Message is safe for clients;
// internal error detail stays in the server log.
type ErrorBody struct {
	Error string `json:"error"`
}

func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorBody{Error: message})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Fail(c, fiber.StatusUnauthorized, "Unauthorized")
}

func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, message)
}

func Conflict(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusConflict, message)
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusInternalServerError, message)
}

// Created sends a 201 with the created entity.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Package respond implements the JSON envelope every API endpoint returns:
// {success, data, timestamp} on success and a structured error object
// carrying type, severity, message and a remediation suggestion on failure.
package respond

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"personal-management/app/database"
)

// Success writes a 200 envelope around data.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Created writes a 201 envelope around data.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Error classifies err and writes the failure envelope with a status code
// derived from the error kind.
func Error(c *fiber.Ctx, err error) error {
	dbErr := database.Classify(err)

	return c.Status(statusFor(dbErr.Kind)).JSON(fiber.Map{
		"success": false,
		"error": fiber.Map{
			"type":       string(dbErr.Kind),
			"severity":   dbErr.Kind.Severity(),
			"message":    dbErr.Err.Error(),
			"suggestion": dbErr.Kind.Suggestion(),
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// ValidationError reports a 400 for input rejected before any storage call.
func ValidationError(c *fiber.Ctx, msg string) error {
	return Error(c, database.Validation(msg))
}

func statusFor(kind database.ErrorKind) int {
	switch kind {
	case database.KindValidation:
		return fiber.StatusBadRequest
	case database.KindNotFound:
		return fiber.StatusNotFound
	case database.KindAuth:
		return fiber.StatusUnauthorized
	case database.KindConstraint:
		return fiber.StatusConflict
	case database.KindConnection:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

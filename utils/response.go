package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// StatusOf maps an error onto the HTTP status the API reports for it.
func StatusOf(err error) int {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		authErr       *AuthError
		duplicateErr  *DuplicateError
		fiberErr      *fiber.Error
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case errors.As(err, &authErr):
		return fiber.StatusUnauthorized
	case errors.As(err, &duplicateErr):
		return fiber.StatusConflict
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is installed as the fiber.Config ErrorHandler so controllers
// can simply return typed errors.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	status := StatusOf(err)
	body := fiber.Map{
		"success": false,
		"message": err.Error(),
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		body["errors"] = validationErr.Violations
	}

	if status >= fiber.StatusInternalServerError {
		var storeErr *StoreError
		if errors.As(err, &storeErr) {
			log.Errorf("%s %s: store %s: %v", ctx.Method(), ctx.OriginalURL(), storeErr.Op, err)
		} else {
			log.Errorf("%s %s: %v", ctx.Method(), ctx.OriginalURL(), err)
		}
	}

	return ctx.Status(status).JSON(body)
}

func Success(ctx *fiber.Ctx, status int, message string, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

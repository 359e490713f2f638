package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries the HTTP status a handler wants to answer with.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string, err error) *AppError {
	return NewAppError(fiber.StatusBadRequest, message, err)
}

func NewNotFoundError(message string, err error) *AppError {
	return NewAppError(fiber.StatusNotFound, message, err)
}

func NewConflictError(message string, err error) *AppError {
	return NewAppError(fiber.StatusConflict, message, err)
}

func NewInternalError(err error) *AppError {
	return NewAppError(fiber.StatusInternalServerError, "Internal server error", err)
}

// ErrorHandlerMiddleware renders errors returned by later handlers as the
// standard response envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(ErrorResponse(appErr.Code, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}

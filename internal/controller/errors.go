package controller

import (
	"errors"
	"net/url"

	"imagine-algorithm/internal/pkg/serverutils"
	"imagine-algorithm/internal/service"
	"imagine-algorithm/pkg/board"
	"imagine-algorithm/pkg/questionnaire"
	"imagine-algorithm/pkg/workshop"

	"github.com/gofiber/fiber/v2"
)

// mapError turns domain errors into HTTP errors. Anything unrecognised
// passes through and ends up as a 500.
func mapError(err error) error {
	switch {
	case errors.Is(err, board.ErrColumnNotFound),
		errors.Is(err, board.ErrItemNotFound),
		errors.Is(err, workshop.ErrNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		return serverutils.NewNotFoundError(err.Error(), err)
	case errors.Is(err, board.ErrDuplicateColumn),
		errors.Is(err, questionnaire.ErrFinished):
		return serverutils.NewConflictError(err.Error(), err)
	case errors.Is(err, board.ErrIndexOutOfRange),
		errors.Is(err, questionnaire.ErrUnknownChoice),
		errors.Is(err, questionnaire.ErrNoSelection):
		return serverutils.NewBadRequestError(err.Error(), err)
	}
	return err
}

func parseAndValidate(parse func(out interface{}) error, req interface{}) error {
	if err := parse(req); err != nil {
		return serverutils.NewBadRequestError("Invalid request body", err)
	}
	return serverutils.ValidateRequest(req)
}

// pathParam returns the unescaped route parameter; column and category
// names carry spaces.
func pathParam(ctx *fiber.Ctx, key string) (string, error) {
	v, err := url.PathUnescape(ctx.Params(key))
	if err != nil {
		return "", serverutils.NewBadRequestError("Invalid path parameter "+key, err)
	}
	return v, nil
}

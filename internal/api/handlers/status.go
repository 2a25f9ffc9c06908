package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
)

// statusForError maps service errors onto HTTP codes. Ownership
// violations surface as the same not-found as a missing record;
// anything outside the domain's sentinel set is an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrParseID),
		errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrTagNameRequired),
		errors.Is(err, domain.ErrIngredientNameRequired),
		errors.Is(err, domain.ErrRecipeTitleRequired),
		errors.Is(err, domain.ErrInvalidTimeMinutes),
		errors.Is(err, domain.ErrInvalidCost),
		errors.Is(err, domain.ErrVerifyTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

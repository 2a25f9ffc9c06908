package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	Meta struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	}

	Response struct {
		Meta   Meta        `json:"meta"`
		Data   interface{} `json:"data,omitempty"`
		Errors interface{} `json:"errors,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Meta: Meta{Message: message, Code: code},
		Data: data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	return c.Status(code).JSON(Response{
		Meta:   Meta{Message: message, Code: code},
		Errors: formatErrors(err),
	})
}

// formatErrors turns validator errors into a field->cause map so clients
// get per-field detail; other errors pass through as a single string.
func formatErrors(err error) interface{} {
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make(map[string]string, len(vErrs))
		for _, fe := range vErrs {
			fields[fe.Field()] = fe.Tag()
		}
		return fields
	}

	return err.Error()
}

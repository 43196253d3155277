package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/fadilmartias/interview-evaluator/internal/response"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code int
	Data any
}

type ErrorResponseFormat struct {
	Code    int
	Message string
	Errors  map[string]string
}

type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

// NewValidator returns a validator that reports fields by their json name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationFormError converts validator output into a FormError keyed by field.
func ValidationFormError(err error) *FormError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewFormError(err.Error(), nil)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "field required"
		default:
			fields[fe.Field()] = fmt.Sprintf("failed on %s", fe.Tag())
		}
	}
	return NewFormError("request validation failed", fields)
}

// SuccessResponse writes data as the JSON body, 200 unless Code is set.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(params.Data)
}

// ErrorResponse writes {"detail": ...}. Without a Message the first error's
// text becomes the detail. FormError field errors are copied into "errors".
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	body := response.ErrorBody{
		Detail: params.Message,
		Errors: params.Errors,
	}
	if len(errs) > 0 && errs[0] != nil {
		if body.Detail == "" {
			body.Detail = errs[0].Error()
		}
		var formErr *FormError
		if errors.As(errs[0], &formErr) {
			if params.Message == "" {
				body.Detail = formErr.Message
			}
			if body.Errors == nil {
				body.Errors = formErr.Errors
			}
		}
	}
	if body.Detail == "" {
		body.Detail = "Internal Server Error"
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(body)
}

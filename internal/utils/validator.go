package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs validator tags over a request DTO and converts
// failures into an AppError carrying a field->rule map, so controllers
// can re-render forms with field-level messages.
func ValidateStruct(s any) *AppError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &AppError{
			StatusCode: http.StatusBadRequest,
			Code:       ErrCodeInvalidPayload,
			Message:    "Invalid request payload",
			Err:        err,
		}
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return &AppError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrCodeValidation,
		Message:    "One or more fields failed validation",
		Err:        err,
		Details:    details,
	}
}

package result

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FromValidation converts the error of validator.Struct into a failed result
// with one failure per invalid field. A nil error yields Ok.
func FromValidation(err error) Result {
	if err == nil {
		return Ok()
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return Fail(err.Error())
	}

	failures := make([]ValidationFailure, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		failures = append(failures, ValidationFailure{
			MemberName: fieldErr.Field(),
			Message:    validationMessage(fieldErr),
		})
	}
	return Fail("validation failed", failures...)
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag())
	}
}

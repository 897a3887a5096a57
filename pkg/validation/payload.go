package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// RoutePayload is the transport-level shape of a route request, validated
// with struct tags before it reaches the routing service
type RoutePayload struct {
	Start          string  `json:"start" validate:"required,min=1,max=256"`
	Goal           string  `json:"goal" validate:"required,min=1,max=256"`
	RequestID      string  `json:"requestIdentifier" validate:"omitempty,max=128"`
	TimeoutSeconds float64 `json:"timeoutSeconds" validate:"omitempty,gte=0,lte=300"`
}

// ValidateRoutePayload validates a transport-level route request
func ValidateRoutePayload(p *RoutePayload) error {
	if p == nil {
		return errors.New("route payload cannot be nil")
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}

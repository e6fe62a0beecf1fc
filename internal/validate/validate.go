// Package validate wraps go-playground/validator so services report
// violations under the JSON field names clients actually sent.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Domenick1991/skybooking/internal/domain"
)

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterTagName(v)
	return v
}

// RegisterTagName makes the validator report violations under JSON field
// names. Also applied to gin's binding validator so transport-level failures
// match service-level ones.
func RegisterTagName(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Wrap converts validator errors into a domain.ValidationError with one
// violation per failed field. Other errors pass through unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	violations := make([]domain.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, domain.FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return domain.NewValidationError(violations...)
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters or more", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

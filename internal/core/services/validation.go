package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// selfValidator is implemented by domain types with rules the struct tags cannot express.
type selfValidator interface {
	Validate() error
}

// validateEntity runs the struct tag rules (skipped when v is nil) and then any domain rules, returning an
// apperrors.ErrValidation naming every failing field.
func validateEntity(v *validator.Validate, entity any) error {
	if v == nil {
		return validateDomainRules(entity)
	}
	if err := v.Struct(entity); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, describeFieldError(fe))
			}
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return validateDomainRules(entity)
}

// validateDomainRules runs selfValidator when entity implements it.
func validateDomainRules(entity any) error {
	if sv, ok := entity.(selfValidator); ok {
		if err := sv.Validate(); err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				return err
			}
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

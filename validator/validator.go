package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and reports fields by the name the
// user actually sets: the env variable for configuration structs, the json key
// for payloads.
type Validator struct {
	Validator *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}

	return strings.Join(msgs, "; ")
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(fieldName)

	return &Validator{Validator: v}
}

func fieldName(fld reflect.StructField) string {
	const maxSplits = 2

	for _, tag := range []string{"env", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", maxSplits)[0]

		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}

	return ""
}

func (v *Validator) Validate(i any) error {
	if err := v.Validator.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.formatValidationErrors(validationErrs)
		}

		return err
	}

	return nil
}

func (v *Validator) formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrs := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		field := err.Field()
		if field == "" {
			field = err.StructField()
		}

		validationErrs = append(validationErrs, ValidationError{
			Field:   field,
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: v.generateErrorMessage(field, err),
		})
	}

	return validationErrs
}

func (v *Validator) generateErrorMessage(field string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url", "http_url":
		return field + " must be a valid URL"
	case "numeric":
		return field + " must be numeric"
	case "uuid":
		return field + " must be a valid UUID"
	}

	param := err.Param()

	switch err.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	default:
		return fmt.Sprintf("%s failed validation on '%s'", field, err.Tag())
	}
}

func (v *Validator) RegisterCustomValidation(tag string, fn validator.Func) error {
	return v.Validator.RegisterValidation(tag, fn)
}

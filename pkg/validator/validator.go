package validator

import (
	"reflect"
	"strings"

	"go-medical-appointment/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so messages match the request body.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterValidation("frequency", func(fl validator.FieldLevel) bool {
		return entity.Frequency(fl.Field().String()).IsValid()
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "frequency":
				errors[field] = field + " must be one of " + frequencyChoices()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func frequencyChoices() string {
	choices := make([]string, 0, len(entity.Frequencies()))
	for _, f := range entity.Frequencies() {
		choices = append(choices, string(f))
	}
	return strings.Join(choices, ", ")
}

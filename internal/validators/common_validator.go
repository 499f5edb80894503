package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"helpize/internal/models"
	"helpize/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("cause", validateCause)
	validate.RegisterValidation("image_file", validateImageFile)
	validate.RegisterValidation("document_file", validateDocumentFile)
	validate.RegisterValidation("blood_group", validateBloodGroup)
	validate.RegisterValidation("bcrypt_len", validateBcryptLength)

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ValidationErrors is returned by every Validate* function when a request is
// rejected. It is an error so services can hand it back unchanged.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Fields maps each rejected field to its first message.
func (v ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, err := range v {
		if _, seen := fields[err.Field]; !seen {
			fields[err.Field] = err.Message
		}
	}
	return fields
}

func (v ValidationErrors) Has(field string) bool {
	for _, err := range v {
		if err.Field == field {
			return true
		}
	}
	return false
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return ValidationErrors{{Field: "request", Tag: "invalid", Message: err.Error()}}
		}
		for _, err := range fieldErrors {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "cause":
		return "Please choose a cause"
	case "image_file":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), strings.Join(utils.AllowedImageTypes, ", "))
	case "document_file":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), strings.Join(utils.AllowedDocumentTypes, ", "))
	case "blood_group":
		return "Invalid blood group"
	case "bcrypt_len":
		return fmt.Sprintf("%s must be at most %d bytes", err.Field(), maxPasswordBytes)
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validateCause(fl validator.FieldLevel) bool {
	return models.Cause(fl.Field().String()).IsValid()
}

func validateImageFile(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true // Let required tag handle empty values
	}
	return utils.IsImageFile(name)
}

func validateDocumentFile(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}
	return utils.IsDocumentFile(name)
}

var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func validateBloodGroup(fl validator.FieldLevel) bool {
	value := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
	if value == "" {
		return true
	}
	for _, group := range bloodGroups {
		if value == group {
			return true
		}
	}
	return false
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

func validateBcryptLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= maxPasswordBytes
}

package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/taskdesk/taskdesk/app/errors"
)

// RegisterRequest carries raw registration input from the front-end.
type RegisterRequest struct {
	Login    string `validate:"required,min=3,max=32,username_format"`
	Password string `validate:"required,min=6,max=72,password_strength"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	validate.RegisterValidation("password_strength", validatePasswordStrength)
	validate.RegisterValidation("username_format", validateUsernameFormat)
}

// validatePasswordStrength checks that the password has at least one
// uppercase letter, one lowercase letter and one number.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	hasUpper := false
	hasLower := false
	hasNumber := false

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		}
		if unicode.IsLower(char) {
			hasLower = true
		}
		if unicode.IsNumber(char) {
			hasNumber = true
		}
		if hasUpper && hasLower && hasNumber {
			return true
		}
	}

	return hasUpper && hasLower && hasNumber
}

// validateUsernameFormat checks that the login contains only letters,
// numbers and underscores.
func validateUsernameFormat(fl validator.FieldLevel) bool {
	login := fl.Field().String()
	if len(login) == 0 {
		return false
	}
	for _, char := range login {
		if !unicode.IsLetter(char) && !unicode.IsNumber(char) && char != '_' {
			return false
		}
	}
	return true
}

// ValidateRegistration validates registration input and returns an
// INVALID_INPUT error describing every violation, or nil.
func ValidateRegistration(req RegisterRequest) *appErrors.AppError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return appErrors.NewInvalidInput(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, formatFieldError(fieldError))
	}
	return appErrors.NewInvalidInput(strings.Join(messages, "; "))
}

// formatFieldError turns a validator error into a user-friendly message
func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "username_format":
		return fmt.Sprintf("%s may only contain letters, numbers and underscores", field)
	case "password_strength":
		return fmt.Sprintf("%s must contain an uppercase letter, a lowercase letter and a number", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

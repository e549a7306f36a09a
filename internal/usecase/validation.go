package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/authgate/internal/domain/errors"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// Credentials is a normalized, validated email/password pair.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,bcryptlen"`
}

var validationMessages = map[string]string{
	"Email.required":     "Email is required.",
	"Email.email":        "Email must be a valid email address.",
	"Password.required":  "Password is required.",
	"Password.min":       "Password must be at least 8 characters long.",
	"Password.bcryptlen": fmt.Sprintf("Password must be at most %d bytes long.", maxPasswordBytes),
}

// CredentialsValidator checks sign-up and login payloads before any store access.
type CredentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator builds a validator with the password byte-length rule registered.
func NewCredentialsValidator() (*CredentialsValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	}); err != nil {
		return nil, fmt.Errorf("register bcryptlen rule: %w", err)
	}
	return &CredentialsValidator{validate: v}, nil
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate normalizes the email and reports the first violated rule as
// *domainErrors.ValidationError. Email rules are checked before password rules.
func (v *CredentialsValidator) Validate(email, password string) (Credentials, error) {
	creds := Credentials{Email: NormalizeEmail(email), Password: password}

	err := v.validate.Struct(creds)
	if err == nil {
		return creds, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return Credentials{}, fmt.Errorf("validate credentials: %w", err)
	}

	first := fieldErrs[0]
	msg, ok := validationMessages[first.Field()+"."+first.Tag()]
	if !ok {
		msg = first.Field() + " is invalid."
	}
	return Credentials{}, &domainErrors.ValidationError{
		Field:   strings.ToLower(first.Field()),
		Message: msg,
	}
}

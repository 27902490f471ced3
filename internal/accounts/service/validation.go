package service

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailShape is a coarse check: something, "@", something, any
// single character, something. The dot is unescaped and only the start is
// anchored, so it accepts addresses such as "a@bcd". It exists to catch
// obviously wrong input, not to prove deliverability.
var emailShape = regexp.MustCompile(`^[^@]+@[^@]+.[^@]+`)

// ValidEmail reports whether email passes the coarse address shape check.
func ValidEmail(email string) bool {
	return emailShape.MatchString(email)
}

// NewValidator returns a validator with the coarse_email tag registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("coarse_email", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	return v
}

// RegisterInput is the user-supplied registration request.
type RegisterInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required,coarse_email"`
	Password string `validate:"required"`
}

// LoginInput is the user-supplied login request.
type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// classify maps validator failures onto workflow errors. Missing fields win
// over a malformed email, so an empty username with a bad email still
// reports missing.
func classify(err error, missing error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return missing
	}
	result := missing
	sawMissing := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			sawMissing = true
		case "coarse_email":
			result = ErrInvalidEmail
		}
	}
	if sawMissing {
		return missing
	}
	return result
}

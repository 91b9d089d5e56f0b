package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > domain.MaxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(i.Username) > domain.MaxUsernameLength {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	} else if !domain.UsernamePattern.MatchString(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "may contain only letters, digits and @/./+/-/_"})
	}

	errs = validateName(errs, "first_name", i.FirstName)
	errs = validateName(errs, "last_name", i.LastName)
	errs = ValidatePassword(errs, "password", i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > domain.MaxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ValidatePassword appends the password rules violated by pw under field.
func ValidatePassword(errs []domain.FieldError, field, pw string) []domain.FieldError {
	switch {
	case pw == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(pw) < domain.MinPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case len(pw) > maxPasswordBytes:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func validateName(errs []domain.FieldError, field, name string) []domain.FieldError {
	if name == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

package user

import (
	"net/mail"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

// CreateUserInput holds parameters for the admin create-user operation.
type CreateUserInput struct {
	Email     string
	Password  string
	Role      domain.UserRole
	FirstName *string
	LastName  *string
}

// Validate validates the create-user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be 'admin' or 'player'"})
	}

	if i.FirstName != nil && len(*i.FirstName) > 100 {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "too long"})
	}
	if i.LastName != nil && len(*i.LastName) > 100 {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds parameters for the update-user operation.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	ID        primitive.ObjectID
	Email     *string
	Password  *string
	Role      *domain.UserRole
	FirstName *string
	LastName  *string
}

// Validate validates the update-user input.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.ID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if i.Email != nil {
		if *i.Email == "" {
			errs = append(errs, domain.FieldError{Field: "email", Message: "must not be empty"})
		} else if _, err := mail.ParseAddress(*i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
		}
	}

	if i.Password != nil {
		if len(*i.Password) < 8 {
			errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
		} else if len(*i.Password) > 72 {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
		}
	}

	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be 'admin' or 'player'"})
	}

	if i.FirstName != nil && len(*i.FirstName) > 100 {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "too long"})
	}
	if i.LastName != nil && len(*i.LastName) > 100 {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

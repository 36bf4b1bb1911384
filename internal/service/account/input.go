package account

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

// LoginInput holds the credentials for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ProvisionInput describes a new account. Regions is the raw comma separated
// list as typed by the operator; it is normalized before storage.
type ProvisionInput struct {
	Email       string
	Password    string
	Role        domain.Role
	Company     string
	Regions     string
	GroupAccess string
}

func (i *ProvisionInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Company = strings.TrimSpace(i.Company)
	i.GroupAccess = strings.ToUpper(strings.TrimSpace(i.GroupAccess))
	if i.Role == "" {
		i.Role = domain.RoleManager
	}
}

// Validate validates the provisioning input.
func (i ProvisionInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	switch {
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin or manager"})
	}

	if i.Role == domain.RoleManager {
		if i.Company == "" {
			errs = append(errs, domain.FieldError{Field: "company", Message: "required for managers"})
		}
		if i.GroupAccess == "" {
			errs = append(errs, domain.FieldError{Field: "group_access", Message: "required for managers"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

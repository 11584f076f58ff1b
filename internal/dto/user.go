package dto

import (
	"fmt"
	"strings"
	"time"

	v "github.com/asaskevich/govalidator"
	"github.com/paycort/paycort-admin/internal/entity"
	gerr "github.com/paycort/paycort-admin/internal/errors"
)

// User is the wire form of a user record. The password hash never leaves the
// store.
type User struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

// ValidateUserInsert checks the required fields and the email shape.
func ValidateUserInsert(u *entity.UserInsert) error {
	u.Email = strings.TrimSpace(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	if _, err := v.ValidateStruct(u); err != nil {
		return fmt.Errorf("%v: %w", err, gerr.ErrInvalidArgument)
	}
	return nil
}

// ValidateUserUpdate checks the fields that are set.
func ValidateUserUpdate(u *entity.UserUpdate) error {
	if u.Empty() {
		return fmt.Errorf("nothing to update: %w", gerr.ErrInvalidArgument)
	}
	if u.Email != nil && !v.IsEmail(strings.TrimSpace(*u.Email)) {
		return fmt.Errorf("email %q: %w", *u.Email, gerr.ErrInvalidArgument)
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("name is empty: %w", gerr.ErrInvalidArgument)
	}
	if u.Password != nil && *u.Password == "" {
		return fmt.Errorf("password is empty: %w", gerr.ErrInvalidArgument)
	}
	return nil
}

// ConvertEntityUserToDto formats a user record for the wire.
func ConvertEntityUserToDto(u *entity.User) User {
	return User{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

package entity

import (
	"database/sql"
	"time"
)

const (
	UserRoleUser = "user"
)

// User is a record of the users collection.
type User struct {
	Id           string       `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	Email        string       `db:"email" json:"email"`
	PasswordHash string       `db:"password_hash" json:"-"`
	Role         string       `db:"role" json:"role"`
	IsActive     bool         `db:"is_active" json:"isActive"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt    sql.NullTime `db:"updated_at" json:"-"`
}

type UserInsert struct {
	Name     string `json:"name" valid:"required"`
	Email    string `json:"email" valid:"required,email"`
	Password string `json:"password" valid:"required"`
}

// UserUpdate is a partial update, nil fields are left untouched.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (u *UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Password == nil
}

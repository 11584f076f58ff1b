package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/paycort/paycort-admin/internal/dependency"
	gerr "github.com/paycort/paycort-admin/internal/errors"
	"github.com/paycort/paycort-admin/internal/entity"
	"golang.org/x/crypto/bcrypt"
)

type userStore struct {
	*MYSQLStore
}

// Users returns an object implementing dependency.Users interface
func (ms *MYSQLStore) Users() dependency.Users {
	return &userStore{
		MYSQLStore: ms,
	}
}

func hashPassword(pw string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("can't hash password: %w", err)
	}
	return string(h), nil
}

// CreateUser adds an active user with the default role.
func (us *userStore) CreateUser(ctx context.Context, u *entity.UserInsert) (string, error) {
	pwHash, err := hashPassword(u.Password)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	query := `
	INSERT INTO users (id, name, email, password_hash, role, is_active)
	VALUES (:id, :name, :email, :passwordHash, :role, TRUE)`
	err = ExecNamed(ctx, us.DB(), query, map[string]any{
		"id":           id,
		"name":         u.Name,
		"email":        strings.ToLower(u.Email),
		"passwordHash": pwHash,
		"role":         entity.UserRoleUser,
	})
	if err != nil {
		if IsErrUniqueViolation(err) {
			return "", fmt.Errorf("user %s: %w", u.Email, gerr.ErrAlreadyExists)
		}
		return "", fmt.Errorf("can't create user: %w", err)
	}
	return id, nil
}

// GetUserByEmail returns the first user with the email.
func (us *userStore) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT * FROM users WHERE email = :email LIMIT 1`
	u, err := QueryNamedOne[entity.User](ctx, us.DB(), query, map[string]any{
		"email": strings.ToLower(email),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("can't get user: %w", err)
	}
	return &u, nil
}

// UpdateUser applies the non-nil fields of u and stamps updated_at.
func (us *userStore) UpdateUser(ctx context.Context, id string, u *entity.UserUpdate) error {
	sets := []string{"updated_at = CURRENT_TIMESTAMP(3)"}
	params := map[string]any{"id": id}
	if u.Name != nil {
		sets = append(sets, "name = :name")
		params["name"] = *u.Name
	}
	if u.Email != nil {
		sets = append(sets, "email = :email")
		params["email"] = strings.ToLower(*u.Email)
	}
	if u.Password != nil {
		pwHash, err := hashPassword(*u.Password)
		if err != nil {
			return err
		}
		sets = append(sets, "password_hash = :passwordHash")
		params["passwordHash"] = pwHash
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = :id`, strings.Join(sets, ", "))
	ra, err := ExecNamedRowsAffected(ctx, us.DB(), query, params)
	if err != nil {
		if IsErrUniqueViolation(err) {
			return fmt.Errorf("user email: %w", gerr.ErrAlreadyExists)
		}
		return fmt.Errorf("can't update user: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("user %s: %w", id, gerr.ErrNotFound)
	}
	return nil
}

// DeleteUser removes the user, its taxes go with it.
func (us *userStore) DeleteUser(ctx context.Context, id string) error {
	ra, err := ExecNamedRowsAffected(ctx, us.DB(), `DELETE FROM users WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete user: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("user %s: %w", id, gerr.ErrNotFound)
	}
	return nil
}

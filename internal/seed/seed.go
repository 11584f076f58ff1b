// Package seed adds signups to the waitlist outside of the public signup
// form, for imports and local fixtures.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/paycort/paycort-admin/internal/dependency"
	"github.com/paycort/paycort-admin/internal/dto"
	gerr "github.com/paycort/paycort-admin/internal/errors"
)

// Result counts what a Run did.
type Result struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// Load reads a JSON array of signups.
func Load(r io.Reader) ([]dto.WaitlistSignup, error) {
	var signups []dto.WaitlistSignup
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&signups); err != nil {
		return nil, fmt.Errorf("decode signups: %w", err)
	}
	return signups, nil
}

// Add validates a signup and stores it unless the email is already on the
// waitlist, in which case it returns gerr.ErrAlreadyExists.
func Add(ctx context.Context, w dependency.Waitlist, s *dto.WaitlistSignup) (string, error) {
	e, err := dto.ConvertWaitlistSignupToEntity(s)
	if err != nil {
		return "", err
	}
	exists, err := w.EmailExists(ctx, e.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("email %s: %w", e.Email, gerr.ErrAlreadyExists)
	}
	return w.AddEntry(ctx, e)
}

// Run adds every signup. Emails already on the waitlist are skipped, an
// invalid signup stops the run.
func Run(ctx context.Context, w dependency.Waitlist, signups []dto.WaitlistSignup) (Result, error) {
	var res Result
	for i := range signups {
		id, err := Add(ctx, w, &signups[i])
		switch {
		case errors.Is(err, gerr.ErrAlreadyExists):
			res.Skipped++
			continue
		case err != nil:
			return res, fmt.Errorf("signup %d: %w", i, err)
		}
		res.Added++
		slog.Default().DebugContext(ctx, "waitlist signup added",
			slog.String("id", id),
		)
	}
	return res, nil
}

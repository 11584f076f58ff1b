// Package gate implements the PIN gate in front of the admin dashboard.
package gate

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paycort/paycort-admin/internal/auth/jwt"
)

const (
	// MessageIncorrect is shown after a mismatch.
	MessageIncorrect = "Incorrect PIN. Please try again."

	// DashboardPath is where a successful login navigates to.
	DashboardPath = "/dashboard"
	// LoginPath is where a logout or a missing session navigates to.
	LoginPath = "/login"

	sessionSubject = "admin"
)

var pinRe = regexp.MustCompile(`^\d{4}$`)

// Config contains the configuration for the gate.
type Config struct {
	AdminPin    string        `mapstructure:"admin_pin"`
	JWTSecret   string        `mapstructure:"jwt_secret"`
	JWTTTL      string        `mapstructure:"jwt_ttl"`
	SubmitDelay time.Duration `mapstructure:"submit_delay"`
}

// DefaultConfig returns a config without secrets.
func DefaultConfig() *Config {
	return &Config{
		JWTTTL:      "0",
		SubmitDelay: 500 * time.Millisecond,
	}
}

// Result is the verdict of a submission.
type Result struct {
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message,omitempty"`
	Redirect      string `json:"redirect,omitempty"`
	Token         string `json:"-"`
}

// Gate checks submitted PINs against the configured secret and issues
// session tokens.
type Gate struct {
	c       *Config
	JwtAuth *jwtauth.JWTAuth
	ttl     time.Duration
}

// New creates a gate.
func New(c *Config) (*Gate, error) {
	if c.AdminPin == "" {
		return nil, fmt.Errorf("admin pin is not configured")
	}
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("parse jwt ttl %q: %w", c.JWTTTL, err)
	}
	if !pinRe.MatchString(c.AdminPin) {
		slog.Default().Warn("admin pin is not four digits, no submission can match")
	}
	return &Gate{
		c:       c,
		JwtAuth: jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		ttl:     ttl,
	}, nil
}

// Submit compares pin with the configured secret after the submit delay.
// A mismatch is a Result, not an error; the error is only set when ctx ends
// before the verdict or the token cannot be issued.
func (g *Gate) Submit(ctx context.Context, pin string) (Result, error) {
	if g.c.SubmitDelay > 0 {
		t := time.NewTimer(g.c.SubmitDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-t.C:
		}
	}

	if !pinRe.MatchString(pin) || subtle.ConstantTimeCompare([]byte(pin), []byte(g.c.AdminPin)) != 1 {
		slog.Default().InfoContext(ctx, "pin mismatch")
		return Result{Message: MessageIncorrect}, nil
	}

	token, err := jwt.NewToken(g.JwtAuth, g.ttl, sessionSubject)
	if err != nil {
		return Result{}, fmt.Errorf("issue token: %w", err)
	}
	return Result{
		Authenticated: true,
		Redirect:      DashboardPath,
		Token:         token,
	}, nil
}

// SubmitPad submits the joined pad. After a mismatch every slot is cleared.
func (g *Gate) SubmitPad(ctx context.Context, p *PinPad) (Result, error) {
	res, err := g.Submit(ctx, p.Value())
	if err != nil {
		return res, err
	}
	if !res.Authenticated {
		p.Clear()
	}
	return res, nil
}

// Verify returns the session a token stands for.
func (g *Gate) Verify(token string) (*Session, error) {
	sub, err := jwt.VerifyToken(g.JwtAuth, token)
	if err != nil {
		return nil, err
	}
	if sub != sessionSubject {
		return nil, fmt.Errorf("unexpected subject %q", sub)
	}
	return &Session{Subject: sub, Token: token}, nil
}

// TTL is the session lifetime, zero when sessions never expire.
func (g *Gate) TTL() time.Duration {
	return g.ttl
}

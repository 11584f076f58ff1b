package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, time.Hour, "admin")
	require.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestToken_NoExpiry(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, 0, "admin")
	require.NoError(t, err)

	parsed, err := jwtauth.VerifyToken(jwtAuth, tok)
	require.NoError(t, err)
	assert.True(t, parsed.Expiration().IsZero())
}

func TestToken_Expired(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	_, tok, err := jwtAuth.Encode(map[string]interface{}{
		"sub": "admin",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}

func TestToken_WrongSecret(t *testing.T) {
	tok, err := NewToken(jwtauth.New("HS256", []byte("secret"), nil), time.Hour, "admin")
	require.NoError(t, err)

	_, err = VerifyToken(jwtauth.New("HS256", []byte("other"), nil), tok)
	assert.Error(t, err)
}

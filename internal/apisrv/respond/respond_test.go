package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gerr "github.com/paycort/paycort-admin/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	Make(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	return rec
}

func body(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	out := map[string]string{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", fmt.Errorf("user 1: %w", gerr.ErrNotFound), http.StatusNotFound, "user 1: not found"},
		{"conflict", gerr.ErrAlreadyExists, http.StatusConflict, "already exists"},
		{"bad request", BadRequest("bad date", nil), http.StatusBadRequest, "bad date"},
		{"internal", errors.New("dial tcp: refused"), http.StatusInternalServerError, msgInternalServer},
		{"unavailable", gerr.ErrUnavailable, http.StatusServiceUnavailable, msgInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(func(w http.ResponseWriter, r *http.Request) error { return tt.err })
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.msg, body(t, rec)["error"])
		})
	}
}

func TestMake_Redirect(t *testing.T) {
	rec := serve(func(w http.ResponseWriter, r *http.Request) error {
		return Unauthorized("not authenticated", "/login")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", body(t, rec)["redirect"])
}

func TestMake_Success(t *testing.T) {
	rec := serve(func(w http.ResponseWriter, r *http.Request) error {
		JSON(w, http.StatusCreated, map[string]string{"id": "1"})
		return nil
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, ContentTypeJSONUTF8, rec.Header().Get(HeaderContentType))
	assert.Equal(t, "1", body(t, rec)["id"])
}

func TestDecode(t *testing.T) {
	var v struct {
		Pin string `json:"pin"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"pin":"1234"}`))
	require.NoError(t, Decode(r, &v))
	assert.Equal(t, "1234", v.Pin)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"pin":"1234","x":1}`))
	err := Decode(r, &v)
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

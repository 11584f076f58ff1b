package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paycort/paycort-admin/internal/apisrv/admin"
	"github.com/paycort/paycort-admin/internal/apisrv/auth"
	"github.com/paycort/paycort-admin/internal/dependency/mocks"
	"github.com/paycort/paycort-admin/internal/entity"
	"github.com/paycort/paycort-admin/internal/gate"
	"github.com/paycort/paycort-admin/internal/ratelimit"
	"github.com/paycort/paycort-admin/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFeed struct {
	s entity.Snapshot
}

func (f staticFeed) Subscribe(fn func(entity.Snapshot)) func() {
	fn(f.s)
	return func() {}
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	c := gate.DefaultConfig()
	c.AdminPin = "1234"
	c.JWTSecret = "hehe"
	c.SubmitDelay = 0
	g, err := gate.New(c)
	require.NoError(t, err)

	feed := staticFeed{s: entity.Snapshot{Records: []entity.WaitlistEntry{{Id: "1", FirstName: "Ada"}}}}
	adminS := admin.New(admin.DefaultConfig(), mocks.NewUsers(t), mocks.NewTaxes(t), nil, feed,
		view.NewRegistry(feed, nil, nil), ratelimit.NewMultiKeyLimiter(ratelimit.DefaultConfig()))

	s := New(&Config{AllowedOrigins: []string{"https://admin.paycort.com"}})
	return s.setupHTTPAPI(auth.New(g), adminS)
}

func TestRouter_Session(t *testing.T) {
	h := testHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/waitlist", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"pin":"1234"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/waitlist", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"firstName":"Ada"`)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Healthz(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	h := testHandler(t)
	for origin, allowed := range map[string]bool{
		"http://localhost:3000":     true,
		"https://admin.paycort.com": true,
		"https://evil.example.com":  false,
	} {
		req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if allowed {
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		} else {
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	}
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("https://localhost:8443", nil))
	assert.False(t, isOriginAllowed("http://localhost", nil))
	assert.True(t, isOriginAllowed("https://admin.paycort.com", []string{"https://admin.paycort.com"}))
}

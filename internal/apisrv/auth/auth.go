package auth

import (
	"net/http"
	"strings"

	"github.com/paycort/paycort-admin/internal/apisrv/respond"
	"github.com/paycort/paycort-admin/internal/gate"
)

const (
	// CookieName holds the session token in the browser.
	CookieName = "adminAuth"
	// AuthHeader carries a bearer token for non browser clients.
	AuthHeader = "Authorization"
)

// Server implements the login endpoints and the session middleware.
type Server struct {
	gate *gate.Gate
}

// New creates a new auth server.
func New(g *gate.Gate) *Server {
	return &Server{gate: g}
}

// LoginRequest is either a joined pin or the four digit slots.
type LoginRequest struct {
	Pin    string   `json:"pin,omitempty"`
	Digits []string `json:"digits,omitempty"`
}

// LoginResponse reports the verdict. After a mismatch Digits holds the
// cleared slots and Focus the slot to type into.
type LoginResponse struct {
	gate.Result
	Token  string   `json:"token,omitempty"`
	Digits []string `json:"digits,omitempty"`
	Focus  *int     `json:"focus,omitempty"`
}

// Login checks the submitted pin and starts a session on match.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) error {
	var req LoginRequest
	if err := respond.Decode(r, &req); err != nil {
		return err
	}

	var (
		pad = &gate.PinPad{}
		res gate.Result
		err error
	)
	if len(req.Digits) > 0 {
		for i, d := range req.Digits {
			pad.Enter(i, d)
		}
		res, err = s.gate.SubmitPad(r.Context(), pad)
	} else {
		res, err = s.gate.Submit(r.Context(), req.Pin)
	}
	if err != nil {
		return err
	}

	resp := LoginResponse{Result: res}
	if !res.Authenticated {
		slots := pad.Slots()
		focus := pad.Focus()
		resp.Digits = slots[:]
		resp.Focus = &focus
		respond.JSON(w, http.StatusOK, resp)
		return nil
	}

	resp.Token = res.Token
	http.SetCookie(w, s.sessionCookie(res.Token))
	respond.JSON(w, http.StatusOK, resp)
	return nil
}

// Logout drops the session cookie and sends the client back to the gate.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respond.JSON(w, http.StatusOK, map[string]string{"redirect": gate.LoginPath})
	return nil
}

// Session reports the session of an authenticated request.
func (s *Server) Session(w http.ResponseWriter, r *http.Request) error {
	sess, ok := gate.FromContext(r.Context())
	if !ok {
		return respond.Unauthorized("not authenticated", gate.LoginPath)
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"subject":       sess.Subject,
	})
	return nil
}

// WithAuth middleware checks if the request carries a valid session and
// puts it into the request context.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			respond.Error(w, r, respond.Unauthorized("not authenticated", gate.LoginPath))
			return
		}
		sess, err := s.gate.Verify(token)
		if err != nil {
			respond.Error(w, r, respond.Unauthorized("invalid session", gate.LoginPath))
			return
		}
		next.ServeHTTP(w, r.WithContext(gate.WithSession(r.Context(), sess)))
	})
}

func (s *Server) sessionCookie(token string) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl := s.gate.TTL(); ttl > 0 {
		c.MaxAge = int(ttl.Seconds())
	}
	return c
}

func tokenFromRequest(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get(AuthHeader), "Bearer "); ok && token != "" {
		return token
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

package admin

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paycort/paycort-admin/internal/apisrv/respond"
	"github.com/paycort/paycort-admin/internal/dependency"
	"github.com/paycort/paycort-admin/internal/ratelimit"
	"github.com/paycort/paycort-admin/internal/view"
)

// Config contains the configuration of the live view endpoints.
type Config struct {
	Heartbeat time.Duration `mapstructure:"heartbeat"`
}

// DefaultConfig returns the default view settings.
func DefaultConfig() *Config {
	return &Config{
		Heartbeat: 15 * time.Second,
	}
}

// Server implements handlers for admin.
type Server struct {
	c      *Config
	users  dependency.Users
	taxes  dependency.Taxes
	bucket dependency.FileStore
	feed   dependency.Feed
	views  *view.Registry
	limits *ratelimit.MultiKeyLimiter
	now    func() time.Time
}

// New creates a new server with admin handlers. b may be nil when no object
// storage is configured.
func New(
	c *Config,
	users dependency.Users,
	taxes dependency.Taxes,
	b dependency.FileStore,
	feed dependency.Feed,
	views *view.Registry,
	limits *ratelimit.MultiKeyLimiter,
) *Server {
	if c.Heartbeat <= 0 {
		c.Heartbeat = DefaultConfig().Heartbeat
	}
	return &Server{
		c:      c,
		users:  users,
		taxes:  taxes,
		bucket: b,
		feed:   feed,
		views:  views,
		limits: limits,
		now:    time.Now,
	}
}

// Routes returns the admin API. Mount it behind the session middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/waitlist", func(r chi.Router) {
		r.Get("/", respond.Make(s.GetWaitlist))
		r.Get("/stream", respond.Make(s.StreamWaitlist))
		r.Get("/export", respond.Make(s.ExportWaitlist))
		r.Post("/export/archive", respond.Make(s.ArchiveWaitlist))
		r.Get("/export/archive", respond.Make(s.ListArchives))
		r.Delete("/export/archive/{name}", respond.Make(s.DeleteArchive))
	})

	r.Route("/views/{id}", func(r chi.Router) {
		r.Get("/", respond.Make(s.GetView))
		r.Delete("/", respond.Make(s.CloseView))
		r.Post("/controls", respond.Make(s.UpdateControls))
		r.Post("/scroll", respond.Make(s.Scroll))
		r.Post("/reveal", respond.Make(s.Reveal))
		r.Get("/export", respond.Make(s.ExportView))
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", respond.Make(s.CreateUser))
		r.Get("/", respond.Make(s.GetUserByEmail))
		r.Put("/{id}", respond.Make(s.UpdateUser))
		r.Delete("/{id}", respond.Make(s.DeleteUser))
		r.Post("/{id}/taxes", respond.Make(s.CreateTax))
		r.Get("/{id}/taxes", respond.Make(s.GetUserTaxes))
	})

	r.Route("/taxes", func(r chi.Router) {
		r.Put("/{id}", respond.Make(s.UpdateTax))
		r.Delete("/{id}", respond.Make(s.DeleteTax))
	})

	return r
}

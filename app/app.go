package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/paycort/paycort-admin/config"
	httpapi "github.com/paycort/paycort-admin/internal/api/http"
	"github.com/paycort/paycort-admin/internal/apisrv/admin"
	"github.com/paycort/paycort-admin/internal/apisrv/auth"
	"github.com/paycort/paycort-admin/internal/bucket"
	"github.com/paycort/paycort-admin/internal/dependency"
	"github.com/paycort/paycort-admin/internal/feed"
	"github.com/paycort/paycort-admin/internal/gate"
	"github.com/paycort/paycort-admin/internal/ratelimit"
	"github.com/paycort/paycort-admin/internal/store"
	"github.com/paycort/paycort-admin/internal/view"
	"golang.org/x/sync/errgroup"
)

// App is the main application
type App struct {
	hs       *httpapi.Server
	db       dependency.Repository
	feed     *feed.Feed
	monitor  *feed.Monitor
	views    *view.Registry
	c        *config.Config
	done     chan struct{}
	doneOnce sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start connects the store, starts the live feed and serves the API.
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting paycort admin")

	// the gate refuses to start without a pin, check it before touching the db
	g, err := gate.New(&a.c.Auth)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create session gate",
			slog.String("err", err.Error()),
		)
		return err
	}

	var fs dependency.FileStore
	if a.c.Bucket.Enabled() {
		b, err := bucket.New(&a.c.Bucket)
		if err != nil {
			slog.Default().ErrorContext(ctx, "failed to create bucket",
				slog.String("err", err.Error()),
			)
			return err
		}
		fs = b
	} else {
		slog.Default().WarnContext(ctx, "object storage is not configured, export archive is disabled")
	}

	db, err := store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}
	a.db = db

	a.feed = feed.New(&a.c.Feed, a.db.Waitlist())
	if err := a.feed.Start(ctx); err != nil {
		return fmt.Errorf("start feed: %w", err)
	}
	a.monitor = feed.NewMonitor(&a.c.Feed, a.db)
	if err := a.monitor.Start(ctx); err != nil {
		return fmt.Errorf("start connectivity monitor: %w", err)
	}
	a.views = view.NewRegistry(a.feed, a.monitor, time.Now)

	limits := ratelimit.NewMultiKeyLimiter(&a.c.Limits)
	limits.Start(ctx)

	authS := auth.New(g)
	adminS := admin.New(&a.c.Views, a.db.Users(), a.db.Taxes(), fs, a.feed, a.views, limits)

	a.hs = httpapi.New(&a.c.HTTP)
	if err := a.hs.Start(ctx, authS, adminS); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		a.finish()
	}()

	return nil
}

// Stop ends every live view, then stops the server and the workers and
// closes the store.
func (a *App) Stop(ctx context.Context) {
	if a.views != nil {
		a.views.CloseAll()
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var g errgroup.Group
	if a.hs != nil {
		g.Go(func() error { return a.hs.Stop(ctx) })
	}
	if a.feed != nil {
		g.Go(a.feed.Stop)
	}
	if a.monitor != nil {
		g.Go(a.monitor.Stop)
	}
	if err := g.Wait(); err != nil {
		slog.Default().ErrorContext(ctx, "failed to stop gracefully",
			slog.String("err", err.Error()),
		)
	}

	if a.db != nil {
		a.db.Close()
	}
	a.finish()
}

func (a *App) finish() {
	a.doneOnce.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}

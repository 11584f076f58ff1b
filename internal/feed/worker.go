package feed

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/paycort/paycort-admin/internal/entity"
)

func (f *Feed) worker(ctx context.Context) {
	f.refresh(ctx)

	ticker := time.NewTicker(f.c.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// refresh reloads the collection when its change counter moved, or when the
// previous delivery was a failure.
func (f *Feed) refresh(ctx context.Context) {
	if err := f.sync(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Default().ErrorContext(ctx, "waitlist subscription failed",
			slog.String("err", err.Error()),
		)
		f.broadcast(entity.Snapshot{Err: err})
	}
}

func (f *Feed) sync(ctx context.Context) error {
	v, err := f.repo.Version(ctx)
	if err != nil {
		return fmt.Errorf("can't get waitlist version: %w", err)
	}

	f.mu.Lock()
	fresh := f.last != nil && f.last.Ok() && f.version == v
	f.mu.Unlock()
	if fresh {
		return nil
	}

	records, err := f.repo.ListByCreatedDesc(ctx)
	if err != nil {
		return fmt.Errorf("can't list waitlist: %w", err)
	}

	f.mu.Lock()
	f.version = v
	f.mu.Unlock()

	f.broadcast(entity.Snapshot{Records: records})
	return nil
}

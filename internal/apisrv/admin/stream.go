package admin

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/paycort/paycort-admin/internal/apisrv/respond"
	"github.com/paycort/paycort-admin/internal/dto"
	"github.com/paycort/paycort-admin/internal/middleware"
)

const (
	eventView   = "view"
	eventRender = "render"
)

// StreamWaitlist opens a live view and streams its frames as server-sent
// events until the client goes away or the view is closed. The first event
// carries the view id the client uses for controls and scroll reports.
func (s *Server) StreamWaitlist(w http.ResponseWriter, r *http.Request) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported by %T", w)
	}
	vq, err := dto.ParseViewQuery(r.URL.Query())
	if err != nil {
		return err
	}
	if err := s.limits.CheckStream(middleware.GetClientIP(r.Context())); err != nil {
		return respond.TooManyRequests(err)
	}

	ctx := r.Context()
	v := s.views.Open(vq.Location)
	defer v.Close()
	v.Apply(vq.Update)
	v.RevealTo(vq.Count)

	slog.Default().InfoContext(ctx, "live view opened", slog.String("view", v.Id))
	defer slog.Default().InfoContext(ctx, "live view closed", slog.String("view", v.Id))

	h := w.Header()
	h.Set(respond.HeaderContentType, "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, eventView, map[string]string{"viewId": v.Id}); err != nil {
		return nil
	}
	select {
	case <-v.Frames():
	default:
	}
	if err := writeEvent(w, eventRender, v.Frame()); err != nil {
		return nil
	}
	flusher.Flush()

	heartbeat := time.NewTicker(s.c.Heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-v.Done():
			return nil
		case f := <-v.Frames():
			if err := writeEvent(w, eventRender, f); err != nil {
				return nil
			}
			flusher.Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

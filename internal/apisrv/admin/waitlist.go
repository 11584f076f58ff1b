package admin

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paycort/paycort-admin/internal/apisrv/respond"
	"github.com/paycort/paycort-admin/internal/dto"
	"github.com/paycort/paycort-admin/internal/entity"
	gerr "github.com/paycort/paycort-admin/internal/errors"
	"github.com/paycort/paycort-admin/internal/export"
	"github.com/paycort/paycort-admin/internal/middleware"
	"github.com/paycort/paycort-admin/internal/view"
)

// GetWaitlist renders the current snapshot once with the controls of the
// query string. Count is rounded up to whole pages.
func (s *Server) GetWaitlist(w http.ResponseWriter, r *http.Request) error {
	vq, err := dto.ParseViewQuery(r.URL.Query())
	if err != nil {
		return err
	}
	v, _ := s.detachedView(vq)
	respond.JSON(w, http.StatusOK, v.Frame())
	return nil
}

// ExportWaitlist downloads everything matching the query string controls.
func (s *Server) ExportWaitlist(w http.ResponseWriter, r *http.Request) error {
	vq, err := dto.ParseViewQuery(r.URL.Query())
	if err != nil {
		return err
	}
	v, ok := s.detachedView(vq)
	if !ok {
		return fmt.Errorf("waitlist is still loading: %w", gerr.ErrUnavailable)
	}
	return s.writeCSV(w, v.Export(), v.Location())
}

// ExportView downloads everything matching the controls of an open view,
// however much of it has been revealed.
func (s *Server) ExportView(w http.ResponseWriter, r *http.Request) error {
	v, err := s.getView(r)
	if err != nil {
		return err
	}
	if v.Loading() {
		return fmt.Errorf("view %s is still loading: %w", v.Id, gerr.ErrUnavailable)
	}
	return s.writeCSV(w, v.Export(), v.Location())
}

// ArchiveWaitlistResponse locates an archived export.
type ArchiveWaitlistResponse struct {
	FileName string `json:"fileName"`
	Url      string `json:"url"`
	Rows     int    `json:"rows"`
}

// ArchiveWaitlist stores the export in object storage. A view query
// parameter archives an open view instead of the query string controls.
func (s *Server) ArchiveWaitlist(w http.ResponseWriter, r *http.Request) error {
	if s.bucket == nil {
		return fmt.Errorf("object storage is not configured: %w", gerr.ErrUnavailable)
	}
	if err := s.limits.CheckArchive(middleware.GetClientIP(r.Context())); err != nil {
		return respond.TooManyRequests(err)
	}

	var (
		entries []entity.WaitlistEntry
		loc     *time.Location
	)
	if id := r.URL.Query().Get("view"); id != "" {
		v, ok := s.views.Get(id)
		if !ok {
			return fmt.Errorf("view %s: %w", id, gerr.ErrNotFound)
		}
		if v.Loading() {
			return fmt.Errorf("view %s is still loading: %w", id, gerr.ErrUnavailable)
		}
		entries, loc = v.Export(), v.Location()
	} else {
		vq, err := dto.ParseViewQuery(r.URL.Query())
		if err != nil {
			return err
		}
		v, ok := s.detachedView(vq)
		if !ok {
			return fmt.Errorf("waitlist is still loading: %w", gerr.ErrUnavailable)
		}
		entries, loc = v.Export(), v.Location()
	}

	name := export.FileName(s.now())
	url, err := s.bucket.UploadExport(r.Context(), name, export.CSV(entries, loc))
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't archive waitlist export",
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("upload export: %w", err)
	}
	respond.JSON(w, http.StatusCreated, ArchiveWaitlistResponse{
		FileName: name,
		Url:      url,
		Rows:     len(entries),
	})
	return nil
}

// ListArchives lists the exports kept in object storage, newest first.
func (s *Server) ListArchives(w http.ResponseWriter, r *http.Request) error {
	if s.bucket == nil {
		return fmt.Errorf("object storage is not configured: %w", gerr.ErrUnavailable)
	}
	list, err := s.bucket.ListExports(r.Context())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list archived exports",
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("list exports: %w", err)
	}
	respond.JSON(w, http.StatusOK, list)
	return nil
}

// DeleteArchive removes an archived export.
func (s *Server) DeleteArchive(w http.ResponseWriter, r *http.Request) error {
	if s.bucket == nil {
		return fmt.Errorf("object storage is not configured: %w", gerr.ErrUnavailable)
	}
	name := chi.URLParam(r, "name")
	if path.Ext(name) != ".csv" {
		return respond.BadRequest("export name must end with .csv", nil)
	}
	if err := s.bucket.DeleteExport(r.Context(), name); err != nil {
		return fmt.Errorf("delete export: %w", err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GetView renders an open view.
func (s *Server) GetView(w http.ResponseWriter, r *http.Request) error {
	v, err := s.getView(r)
	if err != nil {
		return err
	}
	respond.JSON(w, http.StatusOK, v.Frame())
	return nil
}

// CloseView closes an open view and ends its stream.
func (s *Server) CloseView(w http.ResponseWriter, r *http.Request) error {
	v, err := s.getView(r)
	if err != nil {
		return err
	}
	v.Close()
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// UpdateControls changes the search, date filter or sort of an open view.
func (s *Server) UpdateControls(w http.ResponseWriter, r *http.Request) error {
	v, err := s.getView(r)
	if err != nil {
		return err
	}
	var u view.ControlsUpdate
	if err := respond.Decode(r, &u); err != nil {
		return err
	}
	if err := dto.ValidateControlsUpdate(&u); err != nil {
		return err
	}
	v.Apply(u)
	respond.JSON(w, http.StatusOK, v.Frame())
	return nil
}

// RevealResponse reports whether more entries became visible.
type RevealResponse struct {
	Revealed bool       `json:"revealed"`
	Frame    view.Frame `json:"frame"`
}

// Scroll reports the scroll position of an open view, which reveals the next
// page near the bottom of the content.
func (s *Server) Scroll(w http.ResponseWriter, r *http.Request) error {
	v, err := s.getView(r)
	if err != nil {
		return err
	}
	var p view.ScrollPosition
	if err := respond.Decode(r, &p); err != nil {
		return err
	}
	revealed := v.OnScroll(p)
	respond.JSON(w, http.StatusOK, RevealResponse{Revealed: revealed, Frame: v.Frame()})
	return nil
}

// Reveal shows the next page of an open view.
func (s *Server) Reveal(w http.ResponseWriter, r *http.Request) error {
	v, err := s.getView(r)
	if err != nil {
		return err
	}
	revealed := v.Reveal()
	respond.JSON(w, http.StatusOK, RevealResponse{Revealed: revealed, Frame: v.Frame()})
	return nil
}

func (s *Server) getView(r *http.Request) (*view.View, error) {
	id := chi.URLParam(r, "id")
	v, ok := s.views.Get(id)
	if !ok {
		return nil, fmt.Errorf("view %s: %w", id, gerr.ErrNotFound)
	}
	return v, nil
}

// detachedView builds an unregistered view over the snapshot the feed holds.
// ok is false while the feed has not loaded.
func (s *Server) detachedView(vq *dto.ViewQuery) (*view.View, bool) {
	snap, ok := view.Current(s.feed)
	v := view.New("", vq.Location, s.now)
	if ok {
		v.OnSnapshot(snap)
	}
	v.Apply(vq.Update)
	v.RevealTo(vq.Count)
	return v, ok
}

func (s *Server) writeCSV(w http.ResponseWriter, entries []entity.WaitlistEntry, loc *time.Location) error {
	w.Header().Set(respond.HeaderContentType, export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(s.now())))
	w.WriteHeader(http.StatusOK)
	if err := export.Write(w, entries, loc); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

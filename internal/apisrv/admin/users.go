package admin

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paycort/paycort-admin/internal/apisrv/respond"
	"github.com/paycort/paycort-admin/internal/dto"
	"github.com/paycort/paycort-admin/internal/entity"
	gerr "github.com/paycort/paycort-admin/internal/errors"
)

type idResponse struct {
	Id string `json:"id"`
}

// CreateUser adds a user.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) error {
	var u entity.UserInsert
	if err := respond.Decode(r, &u); err != nil {
		return err
	}
	if err := dto.ValidateUserInsert(&u); err != nil {
		return err
	}
	id, err := s.users.CreateUser(r.Context(), &u)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't create user",
			slog.String("err", err.Error()),
		)
		return err
	}
	respond.JSON(w, http.StatusCreated, idResponse{Id: id})
	return nil
}

// GetUserByEmail looks a user up by the email query parameter.
func (s *Server) GetUserByEmail(w http.ResponseWriter, r *http.Request) error {
	email := r.URL.Query().Get("email")
	if email == "" {
		return fmt.Errorf("email is required: %w", gerr.ErrInvalidArgument)
	}
	u, err := s.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		return err
	}
	respond.JSON(w, http.StatusOK, dto.ConvertEntityUserToDto(u))
	return nil
}

// UpdateUser changes the fields that are set.
func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) error {
	var u entity.UserUpdate
	if err := respond.Decode(r, &u); err != nil {
		return err
	}
	if err := dto.ValidateUserUpdate(&u); err != nil {
		return err
	}
	if err := s.users.UpdateUser(r.Context(), chi.URLParam(r, "id"), &u); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// DeleteUser removes a user together with its taxes.
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) error {
	if err := s.users.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// CreateTax adds a tax record to a user.
func (s *Server) CreateTax(w http.ResponseWriter, r *http.Request) error {
	var req dto.TaxInsert
	if err := respond.Decode(r, &req); err != nil {
		return err
	}
	t, err := dto.ConvertTaxInsertToEntity(&req)
	if err != nil {
		return err
	}
	id, err := s.taxes.CreateTax(r.Context(), chi.URLParam(r, "id"), t)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't create tax",
			slog.String("err", err.Error()),
		)
		return err
	}
	respond.JSON(w, http.StatusCreated, idResponse{Id: id})
	return nil
}

// GetUserTaxes lists the tax records of a user.
func (s *Server) GetUserTaxes(w http.ResponseWriter, r *http.Request) error {
	taxes, err := s.taxes.GetUserTaxes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	out := make([]dto.Tax, 0, len(taxes))
	for i := range taxes {
		out = append(out, dto.ConvertEntityTaxToDto(&taxes[i]))
	}
	respond.JSON(w, http.StatusOK, out)
	return nil
}

// UpdateTax changes the fields that are set.
func (s *Server) UpdateTax(w http.ResponseWriter, r *http.Request) error {
	var req dto.TaxUpdate
	if err := respond.Decode(r, &req); err != nil {
		return err
	}
	t, err := dto.ConvertTaxUpdateToEntity(&req)
	if err != nil {
		return err
	}
	if err := s.taxes.UpdateTax(r.Context(), chi.URLParam(r, "id"), t); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// DeleteTax removes a tax record.
func (s *Server) DeleteTax(w http.ResponseWriter, r *http.Request) error {
	if err := s.taxes.DeleteTax(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

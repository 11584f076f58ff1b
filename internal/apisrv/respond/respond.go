// Package respond holds the JSON response helpers shared by the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	gerr "github.com/paycort/paycort-admin/internal/errors"
)

const (
	HeaderContentType   = "Content-Type"
	ContentTypeJSONUTF8 = "application/json; charset=utf-8"

	msgInternalServer = "Internal Server Error"
)

// HTTPError is an error with a status code and a message safe to show.
type HTTPError struct {
	cause   error
	Code    int
	Message string
	// Redirect tells the client where to navigate.
	Redirect string
}

func (he *HTTPError) Error() string {
	return he.Message
}

func (he *HTTPError) Unwrap() error {
	return he.cause
}

// BadRequest wraps cause as a 400 with message.
func BadRequest(message string, cause error) *HTTPError {
	return &HTTPError{cause: cause, Code: http.StatusBadRequest, Message: message}
}

// Unauthorized is a 401 telling the client to go to redirect.
func Unauthorized(message, redirect string) *HTTPError {
	return &HTTPError{Code: http.StatusUnauthorized, Message: message, Redirect: redirect}
}

// TooManyRequests is a 429.
func TooManyRequests(cause error) *HTTPError {
	return &HTTPError{cause: cause, Code: http.StatusTooManyRequests, Message: cause.Error()}
}

// JSON writes payload with status.
func JSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("failed to marshal json response", slog.String("err", err.Error()))
		w.Header().Set(HeaderContentType, ContentTypeJSONUTF8)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}
	w.Header().Set(HeaderContentType, ContentTypeJSONUTF8)
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

type errorBody struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// Error writes err as a JSON error body. Store errors are mapped to their
// status, anything unknown is a 500 that hides the cause.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{}
	status := http.StatusInternalServerError

	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Code
		body.Error = httpErr.Message
		body.Redirect = httpErr.Redirect
	default:
		status = gerr.HTTPStatus(err)
		body.Error = err.Error()
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
		body.Error = msgInternalServer
	}
	slog.Default().Log(r.Context(), level, "request failed",
		slog.Int("code", status),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.String("err", err.Error()),
	)
	JSON(w, status, body)
}

// Handler is an http handler that returns its error.
type Handler func(w http.ResponseWriter, r *http.Request) error

// Make adapts h to http.HandlerFunc, writing a returned error with Error.
func Make(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			if w.Header().Get(HeaderContentType) != "" {
				slog.Default().WarnContext(r.Context(), "handler returned error after writing response",
					slog.String("path", r.URL.Path),
					slog.String("err", err.Error()),
				)
				return
			}
			Error(w, r, err)
		}
	}
}

// Decode reads a JSON body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return BadRequest(fmt.Sprintf("invalid request payload: %v", err), err)
	}
	return nil
}

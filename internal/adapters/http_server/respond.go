package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"game_reviews/internal/domain"
)

type errorBody struct {
	Msg string `json:"msg"`
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body, nil
}

// writeJSON writes v with status. Successful GETs carry a weak ETag and honour
// If-None-Match.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	etag, body, err := calcETagAndBody(v)
	if err != nil {
		writeError(w, r, fmt.Errorf("encode response: %w", err))
		return
	}
	if r.Method == http.MethodGet && status == http.StatusOK {
		w.Header().Set("ETag", etag)
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write response body failed")
	}
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Msg: msg}); err != nil {
		log.Error().Err(err).Msg("write JSON error response failed")
	}
}

func pathNotFound(w http.ResponseWriter, r *http.Request) {
	writeMsg(w, http.StatusNotFound, "Path not found!")
}

// mapError turns a failure into the status and message the client sees.
// Order matters: store-level conditions are recognised before explicitly
// raised ones, and anything unrecognised becomes a 500.
func mapError(err error) (int, string) {
	var ref *domain.ReferenceError
	var api *domain.APIError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "bad request"
	case errors.As(err, &ref):
		return http.StatusNotFound, referenceMsg(ref)
	case errors.As(err, &api):
		return api.Status, api.Msg
	}
	return http.StatusInternalServerError, "internal server error"
}

func referenceMsg(ref *domain.ReferenceError) string {
	switch ref.Field {
	case "author":
		return fmt.Sprintf("User '%v' not found!", ref.Value)
	case "review_id":
		if id, ok := ref.Value.(int64); ok {
			return domain.ReviewNotFound(id).Msg
		}
	}
	return "not found"
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapError(err)
	ev := log.Debug()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).
		Str("req_id", chimw.GetReqID(r.Context())).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("request failed")
	writeMsg(w, status, msg)
}

package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"game_reviews/internal/app"
	"game_reviews/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
}

// handlerFunc returns its failure instead of writing it; handle funnels every
// failure through writeError.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/api/categories", handle(h.getCategories))
	s.mux.Get("/api/reviews", handle(h.getReviews))
	s.mux.Get("/api/reviews/{review_id}", handle(h.getReview))
	s.mux.Patch("/api/reviews/{review_id}", handle(h.patchVotes))
	s.mux.Get("/api/reviews/{review_id}/comments", handle(h.getComments))
	s.mux.Post("/api/reviews/{review_id}/comments", handle(h.postComment))
}

func reviewID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "review_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: review_id %q", domain.ErrInvalidInput, raw)
	}
	return id, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: body: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handlers) getCategories(w http.ResponseWriter, r *http.Request) error {
	cats, err := h.Q.ListCategories(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"categories": cats})
	return nil
}

func (h *Handlers) getReviews(w http.ResponseWriter, r *http.Request) error {
	qs := r.URL.Query()
	p := app.ReviewListParams{
		SortBy:  qs.Get("sort_by"),
		OrderBy: qs.Get("order_by"),
	}
	if qs.Has("category") {
		c := qs.Get("category")
		p.Category = &c
	}
	reviews, err := h.Q.ListReviews(r.Context(), p)
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"reviews": reviews})
	return nil
}

func (h *Handlers) getReview(w http.ResponseWriter, r *http.Request) error {
	id, err := reviewID(r)
	if err != nil {
		return err
	}
	rv, err := h.Q.GetReview(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"review": rv})
	return nil
}

func (h *Handlers) getComments(w http.ResponseWriter, r *http.Request) error {
	id, err := reviewID(r)
	if err != nil {
		return err
	}
	comments, err := h.Q.ListComments(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"comments": comments})
	return nil
}

type postCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (h *Handlers) postComment(w http.ResponseWriter, r *http.Request) error {
	id, err := reviewID(r)
	if err != nil {
		return err
	}
	var req postCommentRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	c, err := h.C.PostComment(r.Context(), domain.NewComment{ReviewID: id, Author: req.Username, Body: req.Body})
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusCreated, map[string]any{"new_comment": c})
	return nil
}

// voteDelta accepts a JSON integer or a string holding one.
type voteDelta int

func (v *voteDelta) UnmarshalJSON(b []byte) error {
	s := string(b)
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("inc_votes %s is not an integer", b)
	}
	*v = voteDelta(n)
	return nil
}

type patchVotesRequest struct {
	IncVotes *voteDelta `json:"inc_votes"`
}

func (h *Handlers) patchVotes(w http.ResponseWriter, r *http.Request) error {
	id, err := reviewID(r)
	if err != nil {
		return err
	}
	var req patchVotesRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	if req.IncVotes == nil {
		return fmt.Errorf("%w: inc_votes is required", domain.ErrInvalidInput)
	}
	rv, err := h.C.UpdateVotes(r.Context(), id, int(*req.IncVotes))
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"review": rv})
	return nil
}

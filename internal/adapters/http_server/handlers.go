package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tripvote/internal/adapters/observability"
	"tripvote/internal/domain"
)

const (
	voterCookie  = "trip_voter_key"
	maxBodyBytes = 1 << 20
)

type DestinationService interface {
	List(ctx context.Context, q domain.DestinationsQuery) ([]domain.DestinationView, error)
	Get(ctx context.Context, id, voterID string) (domain.DestinationView, error)
	Create(ctx context.Context, payload map[string]any) (domain.Destination, error)
	Update(ctx context.Context, id string, payload map[string]any) (domain.Destination, error)
	Delete(ctx context.Context, id string) error
}

type VoteService interface {
	Toggle(ctx context.Context, destinationID, voterID string) (domain.VoteState, error)
	Remove(ctx context.Context, destinationID, voterID string) (domain.VoteState, error)
}

type CommentService interface {
	List(ctx context.Context, destinationID string) ([]domain.Comment, error)
	Create(ctx context.Context, destinationID, content, authorName string) (domain.Comment, error)
	Update(ctx context.Context, destinationID, commentID, content, requesterAuthorName string) (domain.Comment, error)
	Delete(ctx context.Context, destinationID, commentID, requesterAuthorName string) error
}

type LookupService interface {
	Lookup(ctx context.Context, address string) (domain.LookupResult, error)
}

type ImageService interface {
	Extract(ctx context.Context, rawURL string) (string, error)
}

type VoterService interface {
	NewClientKey() string
	Resolve(ctx context.Context, clientKey string) (string, error)
}

type Handlers struct {
	Destinations DestinationService
	Votes        VoteService
	Comments     CommentService
	Lookup       LookupService
	Images       ImageService
	Voters       VoterService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type successBody struct {
	Success bool `json:"success"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Route("/api", func(r chi.Router) {
		r.Get("/destinations", h.listDestinations)
		r.Post("/destinations", h.createDestination)
		r.Get("/destinations/{id}", h.getDestination)
		r.Put("/destinations/{id}", h.updateDestination)
		r.Delete("/destinations/{id}", h.deleteDestination)

		r.Post("/destinations/{id}/vote", h.toggleVote)
		r.Delete("/destinations/{id}/vote", h.removeVote)

		r.Get("/destinations/{id}/comments", h.listComments)
		r.Post("/destinations/{id}/comments", h.createComment)
		r.Put("/destinations/{id}/comments/{commentId}", h.updateComment)
		r.Delete("/destinations/{id}/comments/{commentId}", h.deleteComment)

		r.Post("/lookup", h.lookup)
		r.Post("/extract-image", h.extractImage)
		r.Get("/voter", h.voter)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps a service error to its problem response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Bad Request", domain.Message(err, "Invalid request."))
	case errors.Is(err, domain.ErrForbidden):
		writeProblem(w, http.StatusForbidden, "Forbidden", domain.Message(err, "Forbidden."))
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", domain.Message(err, "Not found."))
	case errors.Is(err, domain.ErrUpstream):
		writeProblem(w, http.StatusInternalServerError, "Upstream Error", domain.Message(err, "An external service failed."))
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "Something went wrong. Please try again.")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeCacheable marshals once, hashes once and honours If-None-Match.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`

	w.Header().Set("ETag", etag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write response body failed")
	}
}

// decodeBody reads a JSON body into dst, answering 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		detail := "Invalid JSON body."
		if errors.Is(err, io.EOF) {
			detail = "Request body is required."
		}
		writeProblem(w, http.StatusBadRequest, "Bad Request", detail)
		return false
	}
	return true
}

// ---- destinations ----

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	q := domain.DestinationsQuery{
		VoterID: r.URL.Query().Get("voterId"),
		Sort:    r.URL.Query().Get("sort"),
	}
	out, err := h.Destinations.List(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) getDestination(w http.ResponseWriter, r *http.Request) {
	out, err := h.Destinations.Get(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("voterId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) createDestination(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if !decodeBody(w, r, &payload) {
		return
	}
	d, err := h.Destinations.Create(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *Handlers) updateDestination(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if !decodeBody(w, r, &payload) {
		return
	}
	d, err := h.Destinations.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) deleteDestination(w http.ResponseWriter, r *http.Request) {
	if err := h.Destinations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successBody{Success: true})
}

// ---- votes ----

func (h *Handlers) toggleVote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		VoterID string `json:"voterId"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	state, err := h.Votes.Toggle(r.Context(), chi.URLParam(r, "id"), body.VoterID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	observability.ObserveVote(state.HasVoted)
	writeJSON(w, http.StatusOK, state)
}

func (h *Handlers) removeVote(w http.ResponseWriter, r *http.Request) {
	state, err := h.Votes.Remove(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("voterId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// ---- comments ----

type commentBody struct {
	Content    string `json:"content"`
	AuthorName string `json:"authorName"`
}

func (h *Handlers) listComments(w http.ResponseWriter, r *http.Request) {
	out, err := h.Comments.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createComment(w http.ResponseWriter, r *http.Request) {
	var body commentBody
	if !decodeBody(w, r, &body) {
		return
	}
	c, err := h.Comments.Create(r.Context(), chi.URLParam(r, "id"), body.Content, body.AuthorName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) updateComment(w http.ResponseWriter, r *http.Request) {
	var body commentBody
	if !decodeBody(w, r, &body) {
		return
	}
	c, err := h.Comments.Update(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "commentId"), body.Content, body.AuthorName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) deleteComment(w http.ResponseWriter, r *http.Request) {
	err := h.Comments.Delete(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "commentId"), r.URL.Query().Get("authorName"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successBody{Success: true})
}

// ---- autofill ----

func (h *Handlers) lookup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Address string `json:"address"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	res, err := h.Lookup.Lookup(r.Context(), body.Address)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) extractImage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	img, err := h.Images.Extract(r.Context(), body.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": img})
}

// ---- identity ----

// voter returns the voter id bound to the caller's key cookie, issuing a
// key on first contact.
func (h *Handlers) voter(w http.ResponseWriter, r *http.Request) {
	key := ""
	if c, err := r.Cookie(voterCookie); err == nil {
		key = c.Value
	}
	if key == "" {
		key = h.Voters.NewClientKey()
		http.SetCookie(w, &http.Cookie{
			Name:     voterCookie,
			Value:    key,
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	id, err := h.Voters.Resolve(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"voterId": id})
}

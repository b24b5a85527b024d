/*
Package server exposes a classification tree over HTTP.
*/
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
)

// Handler serves the routes to inspect a tree and classify samples with it
type Handler struct {
	Tree *tree.Tree
}

// Prediction is the body of a successful classification response
type Prediction struct {
	Label string `json:"label"`
}

// NewHandler returns a Handler for the given tree
func NewHandler(t *tree.Tree) *Handler {
	return &Handler{Tree: t}
}

// RegisterRoutes adds the handler routes to r
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthCheck)
	r.Get("/tree", h.GetTree)
	r.Post("/classify", h.Classify)
}

/*
NewRouter takes a Handler and a list of origins allowed to make cross-origin
requests and returns a router serving the handler routes behind request
logging, panic recovery and CORS middleware.
*/
func NewRouter(h *Handler, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	h.RegisterRoutes(r)
	return r
}

// HealthCheck answers OK
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

/*
GetTree writes the tree as an outline, or drawn with connectors when the
format query parameter is "tree".
*/
func (h *Handler) GetTree(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if r.URL.Query().Get("format") == "tree" {
		w.Write([]byte(h.Tree.String()))
		return
	}
	err := h.Tree.Fprint(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

/*
Classify decodes a JSON object of feature names to values and answers
with the label the tree predicts for it. Values the tree has no branch for
are answered with 422 Unprocessable Entity, any other problem with the
sample with 400 Bad Request.
*/
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var values map[string]string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	label, err := h.Tree.Predict(r.Context(), dataset.NewSample(values))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, tree.ErrUnseenAttributeValue) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Prediction{Label: label})
}

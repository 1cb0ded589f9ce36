package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/semcat/semcat/internal/auth"
	"github.com/semcat/semcat/internal/embedding"
	"github.com/semcat/semcat/internal/logger"
	"github.com/semcat/semcat/internal/pipeline"
	"github.com/semcat/semcat/internal/search"
)

// Handlers carries the collaborators behind the API endpoints.
type Handlers struct {
	orchestrator *pipeline.Orchestrator
	users        auth.Users
	tokens       auth.Tokens
	embedder     embedding.Embedder
	index        search.Index
	logger       *logger.Logger
	validate     *validator.Validate
}

// NewHandlers constructs the handler set.
func NewHandlers(
	orchestrator *pipeline.Orchestrator,
	users auth.Users,
	tokens auth.Tokens,
	embedder embedding.Embedder,
	index search.Index,
	log *logger.Logger,
) *Handlers {
	return &Handlers{
		orchestrator: orchestrator,
		users:        users,
		tokens:       tokens,
		embedder:     embedder,
		index:        index,
		logger:       log,
		validate:     validator.New(),
	}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// Register creates a new user.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"msg": "Missing username or password"})
		return
	}

	if err := h.users.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			respondJSON(w, http.StatusBadRequest, map[string]string{"msg": "User already exists"})
			return
		}
		h.logger.Error("user registration failed", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"msg": "Registration failed"})
		return
	}

	h.logger.Info("user registered", nil, map[string]interface{}{"username": req.Username})
	respondJSON(w, http.StatusCreated, map[string]string{"msg": "User registered successfully"})
}

// Login verifies credentials and issues a bearer token. The token subject
// is the identity the rate limiter keys on.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"msg": "Missing username or password"})
		return
	}

	if err := h.users.Authenticate(r.Context(), req.Username, req.Password); err != nil {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		h.logger.Error("token issuing failed", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"msg": "Login failed"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

type classifyRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// classifyResponse is the wire shape of a classification result.
type classifyResponse struct {
	Response interface{} `json:"response"`
	Cached   bool        `json:"cached"`
	Time     float64     `json:"time"`
}

// Classify runs a query through the classification pipeline.
func (h *Handlers) Classify(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	var req classifyRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"msg": "Query is required"})
		return
	}

	outcome := h.orchestrator.Classify(r.Context(), pipeline.Request{
		Identity: identity,
		Query:    req.Query,
	})

	switch outcome.Status {
	case pipeline.StatusRateLimited:
		respondJSON(w, http.StatusTooManyRequests, map[string]string{"msg": "Rate limit exceeded, try again later."})
	case pipeline.StatusEmbeddingFailed:
		respondJSON(w, http.StatusInternalServerError, map[string]string{"msg": "Unable to classify query"})
	default:
		respondJSON(w, http.StatusOK, classifyResponse{
			Response: outcome.Result,
			Cached:   outcome.Cached,
			Time:     outcome.Elapsed,
		})
	}
}

type taxonomyRequest struct {
	Supercategory string `json:"supercategory"`
	Category      string `json:"category" validate:"required,min=1"`
	Subcategory   string `json:"subcategory" validate:"required,min=1"`
	Description   string `json:"description" validate:"required,min=1"`
}

// CreateTaxonomyEntry embeds the description and stores the labelled
// document in the categories index.
func (h *Handlers) CreateTaxonomyEntry(w http.ResponseWriter, r *http.Request) {
	var req taxonomyRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"msg": "Category, Subcategory, and Description are required"})
		return
	}

	vector, err := h.embedder.Embed(r.Context(), req.Description)
	if err != nil {
		h.logger.Error("failed to embed taxonomy description", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"msg": "Error generating embedding for the description"})
		return
	}

	id, err := h.index.IndexEntry(r.Context(), "", search.Entry{
		Supercategory: req.Supercategory,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Description:   req.Description,
		Embedding:     vector,
	})
	if err != nil {
		h.logger.Error("failed to index taxonomy entry", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"msg": "Error storing document"})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"msg": "Document stored successfully", "id": id})
}

// UpdateTaxonomyEntry re-embeds the description and updates the document.
func (h *Handlers) UpdateTaxonomyEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req taxonomyRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"msg": "Category, Subcategory, and Description are required"})
		return
	}

	vector, err := h.embedder.Embed(r.Context(), req.Description)
	if err != nil {
		h.logger.Error("failed to embed taxonomy description", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"msg": "Error generating embedding for the description"})
		return
	}

	err = h.index.UpdateEntry(r.Context(), id, search.Entry{
		Supercategory: req.Supercategory,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Description:   req.Description,
		Embedding:     vector,
	})
	if err != nil {
		if errors.Is(err, search.ErrEntryNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"msg": "Document not found"})
			return
		}
		h.logger.Error("failed to update taxonomy entry", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"msg": "Error updating document"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"msg": "Document updated successfully"})
}

// DeleteTaxonomyEntry removes a taxonomy document by id.
func (h *Handlers) DeleteTaxonomyEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.index.DeleteEntry(r.Context(), id); err != nil {
		if errors.Is(err, search.ErrEntryNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"msg": "Document not found"})
			return
		}
		h.logger.Error("failed to delete taxonomy entry", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"msg": "Error deleting document"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"msg": "Document deleted successfully"})
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation on it.
func decodeAndValidate(r *http.Request, validate *validator.Validate, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

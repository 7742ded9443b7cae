package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/simaogato/investments-backend/internal/domain"
	"github.com/simaogato/investments-backend/internal/usecase/portfolio"
)

// Handler serves the /investments resource
type Handler struct {
	Service *portfolio.PortfolioService
}

// NewHandler creates a new Handler instance
func NewHandler(service *portfolio.PortfolioService) *Handler {
	return &Handler{Service: service}
}

// CreateHolding records a new holding.
// POST /investments
func (h *Handler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeHolding(w, r)
	if !ok {
		return
	}

	holding, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, newHoldingResponse(holding), http.StatusCreated)
}

// ListHoldings returns every holding, or those of ?type= when given.
// GET /investments
func (h *Handler) ListHoldings(w http.ResponseWriter, r *http.Request) {
	typeFilter := domain.AssetType(r.URL.Query().Get("type"))

	holdings, err := h.Service.List(r.Context(), typeFilter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res := make([]holdingResponse, 0, len(holdings))
	for _, holding := range holdings {
		res = append(res, newHoldingResponse(holding))
	}

	respond(w, res, http.StatusOK)
}

// GetHolding returns one holding.
// GET /investments/{id}
func (h *Handler) GetHolding(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	holding, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, newHoldingResponse(holding), http.StatusOK)
}

// UpdateHolding overwrites every field of an existing holding.
// PUT /investments/{id}
func (h *Handler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	input, ok := decodeHolding(w, r)
	if !ok {
		return
	}

	holding, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, newHoldingResponse(holding), http.StatusOK)
}

// DeleteHolding removes a holding.
// DELETE /investments/{id}
func (h *Handler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSummary returns portfolio totals.
// GET /investments/summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.GetSummary(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, newSummaryResponse(summary), http.StatusOK)
}

// Healthcheck reports liveness.
// GET /healthz
func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	respond(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(w, "invalid holding id: "+raw)
		return uuid.Nil, false
	}
	return id, true
}

func decodeHolding(w http.ResponseWriter, r *http.Request) (portfolio.HoldingInput, bool) {
	var req holdingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "malformed request body: "+err.Error())
		return portfolio.HoldingInput{}, false
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return portfolio.HoldingInput{}, false
	}

	return input, true
}

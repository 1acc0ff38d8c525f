package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campus-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured: the slot
// selection endpoint consumed by page renders, the admin campaign CRUD, and
// the operational endpoints.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/slots/select", h.handleSelect)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Patch("/{id}/active", h.handleSetActive)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type errorBody struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// headers are already sent so nothing else can be done.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto HTTP statuses: validation failures are
// 400 with the offending field, unknown ids are 404, everything else is a
// logged 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *port.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Field: verr.Field, Message: verr.Message}})
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: errorBody{Message: "campaign not found"}})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorBody{Message: "internal error"}})
	}
}

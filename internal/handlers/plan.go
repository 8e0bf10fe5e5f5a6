// internal/handlers/plan.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mtarnawa/restock-be/internal/core/ports"
	"github.com/mtarnawa/restock-be/internal/core/services"
	"github.com/mtarnawa/restock-be/internal/handlers/middleware"
)

// PlanHandler handles shopping plan HTTP requests
type PlanHandler struct {
	service ports.PlannerService
	logger  *slog.Logger
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(service ports.PlannerService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "plan")),
	}
}

// GetPlan handles GET /api/v1/plan
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionFromRequest(r)

	plan, err := h.service.Plan(ctx, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build plan",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to build shopping plan")
		return
	}

	h.respondJSON(w, http.StatusOK, plan)
}

// GetDashboard handles GET /api/v1/plan/dashboard
func (h *PlanHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionFromRequest(r)

	dashboard, err := h.service.Dashboard(ctx, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}

// OverrideRequest pins one item to a chosen supplier
type OverrideRequest struct {
	SupplierID uuid.UUID `json:"supplier_id"`
}

// SetOverride handles PUT /api/v1/plan/overrides/{itemId}
func (h *PlanHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionFromRequest(r)

	itemID, err := uuid.Parse(r.PathValue("itemId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var req OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SupplierID == uuid.Nil {
		h.respondError(w, http.StatusBadRequest, "supplier_id is required")
		return
	}

	plan, err := h.service.SetOverride(ctx, sessionID, itemID, req.SupplierID)
	if err != nil {
		h.respondServiceError(ctx, w, err, "Failed to set override")
		return
	}

	h.logger.InfoContext(ctx, "override set",
		slog.String("item_id", itemID.String()),
		slog.String("supplier_id", req.SupplierID.String()))

	h.respondJSON(w, http.StatusOK, plan)
}

// ClearOverride handles DELETE /api/v1/plan/overrides/{itemId}
func (h *PlanHandler) ClearOverride(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionFromRequest(r)

	itemID, err := uuid.Parse(r.PathValue("itemId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	plan, err := h.service.ClearOverride(ctx, sessionID, itemID)
	if err != nil {
		h.respondServiceError(ctx, w, err, "Failed to clear override")
		return
	}

	h.logger.InfoContext(ctx, "override cleared",
		slog.String("item_id", itemID.String()))

	h.respondJSON(w, http.StatusOK, plan)
}

// respondServiceError maps planner errors onto HTTP statuses
func (h *PlanHandler) respondServiceError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrUnknownItem):
		h.respondError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, services.ErrUnknownSupplier):
		h.respondError(w, http.StatusNotFound, "Supplier not found")
	case errors.Is(err, services.ErrSupplierNotOffering):
		h.respondError(w, http.StatusUnprocessableEntity, "Supplier does not offer this item")
	default:
		h.logger.ErrorContext(ctx, fallback, slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

// Helper methods

func (h *PlanHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *PlanHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

package handlers

import (
	"context"
	"net/http"

	"github.com/edumynt/backend/internal/models"
	authMiddleware "github.com/edumynt/backend/libs/auth/middleware"
	"github.com/edumynt/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DashboardService is the interface that wraps methods for the learner dashboard
type DashboardService interface {
	// GetDashboard retrieves the user's enrolled courses and learning stats
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the dashboard and an error if any.
	GetDashboard(ctx context.Context, userID string) (*models.DashboardResponse, error)
}

// DashboardHandler handles HTTP requests for the learner dashboard
type DashboardHandler struct {
	handlers.BaseHandler
	service DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all dashboard handler routes
func (h *DashboardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Get("/dashboard", h.GetDashboard)
}

// GetDashboard handles GET /dashboard
// @Summary Get dashboard
// @Description Get the user's enrolled courses with progress, where to continue, and summary stats
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DashboardResponse "Dashboard"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	// Extract userID from context
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	dashboard, err := h.service.GetDashboard(r.Context(), userID)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to get dashboard")
		return
	}

	h.RespondJSON(w, http.StatusOK, dashboard)
}

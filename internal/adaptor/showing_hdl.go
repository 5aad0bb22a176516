package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-showings/internal/dto/request"
	"cinema-showings/internal/usecase"
	"cinema-showings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowingHandler struct {
	service usecase.ShowingService
	log     *zap.Logger
}

func NewShowingHandler(service usecase.ShowingService, log *zap.Logger) *ShowingHandler {
	return &ShowingHandler{
		service: service,
		log:     log.With(zap.String("handler", "showing")),
	}
}

// ListShowings handles GET /api/showings (public)
func (h *ShowingHandler) ListShowings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ListShowingsRequest{
		MovieTypeID:   query.Get("movie_type_id"),
		LocationID:    query.Get("location_id"),
		From:          query.Get("from"),
		To:            query.Get("to"),
		OnlyAvailable: utils.ParseBool(query.Get("only_available"), false),
	}
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	showings, err := h.service.ListShowings(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list showings")
		return
	}

	utils.ResponseSuccess(w, "success", showings)
}

// GetShowing handles GET /api/showings/{id} (public)
func (h *ShowingHandler) GetShowing(w http.ResponseWriter, r *http.Request) {
	showingID := chi.URLParam(r, "id")
	if showingID == "" {
		utils.ResponseBadRequest(w, "Showing ID is required", nil)
		return
	}

	showing, err := h.service.GetShowing(r.Context(), showingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get showing")
		return
	}

	utils.ResponseSuccess(w, "success", showing)
}

// GetSeatMap handles GET /api/showings/{id}/seats (public)
func (h *ShowingHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	showingID := chi.URLParam(r, "id")
	if showingID == "" {
		utils.ResponseBadRequest(w, "Showing ID is required", nil)
		return
	}

	seatMap, err := h.service.GetSeatMap(r.Context(), showingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// ==================== ADMIN METHODS ====================

// CreateShowing handles POST /api/admin/showings (owner only)
func (h *ShowingHandler) CreateShowing(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showing, err := h.service.CreateShowing(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create showing")
		return
	}

	utils.ResponseCreated(w, "success", showing)
}

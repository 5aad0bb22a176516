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

// CatalogHandler exposes the owner-facing reference data endpoints.
type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ==================== CAST ====================

// CreateCast handles POST /api/admin/casts
func (h *CatalogHandler) CreateCast(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cast, err := h.service.CreateCast(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create cast")
		return
	}

	utils.ResponseCreated(w, "success", cast)
}

// ListCasts handles GET /api/admin/casts
func (h *CatalogHandler) ListCasts(w http.ResponseWriter, r *http.Request) {
	casts, err := h.service.ListCasts(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list casts")
		return
	}

	utils.ResponseSuccess(w, "success", casts)
}

// GetCast handles GET /api/admin/casts/{id}
func (h *CatalogHandler) GetCast(w http.ResponseWriter, r *http.Request) {
	castID := chi.URLParam(r, "id")
	if castID == "" {
		utils.ResponseBadRequest(w, "Cast ID is required", nil)
		return
	}

	resp, err := h.service.GetCast(r.Context(), castID)
	if err != nil {
		handleServiceError(h.log, w, err, "get cast")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// DeleteCast handles DELETE /api/admin/casts/{id}
func (h *CatalogHandler) DeleteCast(w http.ResponseWriter, r *http.Request) {
	castID := chi.URLParam(r, "id")
	if castID == "" {
		utils.ResponseBadRequest(w, "Cast ID is required", nil)
		return
	}

	if err := h.service.DeleteCast(r.Context(), castID); err != nil {
		handleServiceError(h.log, w, err, "delete cast")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== CATEGORY ====================

// CreateCategory handles POST /api/admin/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "success", category)
}

// ListCategories handles GET /api/admin/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// GetCategory handles GET /api/admin/categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	resp, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		handleServiceError(h.log, w, err, "get category")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		handleServiceError(h.log, w, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== LOCATION ====================

// CreateLocation handles POST /api/admin/locations
func (h *CatalogHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	location, err := h.service.CreateLocation(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create location")
		return
	}

	utils.ResponseCreated(w, "success", location)
}

// ListLocations handles GET /api/admin/locations
func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.ListLocations(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list locations")
		return
	}

	utils.ResponseSuccess(w, "success", locations)
}

// GetLocation handles GET /api/admin/locations/{id}
func (h *CatalogHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "id")
	if locationID == "" {
		utils.ResponseBadRequest(w, "Location ID is required", nil)
		return
	}

	resp, err := h.service.GetLocation(r.Context(), locationID)
	if err != nil {
		handleServiceError(h.log, w, err, "get location")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// DeleteLocation handles DELETE /api/admin/locations/{id}
func (h *CatalogHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "id")
	if locationID == "" {
		utils.ResponseBadRequest(w, "Location ID is required", nil)
		return
	}

	if err := h.service.DeleteLocation(r.Context(), locationID); err != nil {
		handleServiceError(h.log, w, err, "delete location")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== MOVIE TYPE ====================

// CreateMovieType handles POST /api/admin/movie-types
func (h *CatalogHandler) CreateMovieType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movieType, err := h.service.CreateMovieType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create movie type")
		return
	}

	utils.ResponseCreated(w, "success", movieType)
}

// ListMovieTypes handles GET /api/admin/movie-types
func (h *CatalogHandler) ListMovieTypes(w http.ResponseWriter, r *http.Request) {
	movieTypes, err := h.service.ListMovieTypes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list movie types")
		return
	}

	utils.ResponseSuccess(w, "success", movieTypes)
}

// GetMovieType handles GET /api/admin/movie-types/{id}
func (h *CatalogHandler) GetMovieType(w http.ResponseWriter, r *http.Request) {
	movieTypeID := chi.URLParam(r, "id")
	if movieTypeID == "" {
		utils.ResponseBadRequest(w, "Movie type ID is required", nil)
		return
	}

	resp, err := h.service.GetMovieType(r.Context(), movieTypeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get movie type")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// DeleteMovieType handles DELETE /api/admin/movie-types/{id}
func (h *CatalogHandler) DeleteMovieType(w http.ResponseWriter, r *http.Request) {
	movieTypeID := chi.URLParam(r, "id")
	if movieTypeID == "" {
		utils.ResponseBadRequest(w, "Movie type ID is required", nil)
		return
	}

	if err := h.service.DeleteMovieType(r.Context(), movieTypeID); err != nil {
		handleServiceError(h.log, w, err, "delete movie type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== SEAT ====================

// CreateSeat handles POST /api/admin/seats
func (h *CatalogHandler) CreateSeat(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.CreateSeat(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create seat")
		return
	}

	utils.ResponseCreated(w, "success", seat)
}

// ListSeats handles GET /api/admin/seats
func (h *CatalogHandler) ListSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.ListSeats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// GetSeat handles GET /api/admin/seats/{id}
func (h *CatalogHandler) GetSeat(w http.ResponseWriter, r *http.Request) {
	seatID := chi.URLParam(r, "id")
	if seatID == "" {
		utils.ResponseBadRequest(w, "Seat ID is required", nil)
		return
	}

	resp, err := h.service.GetSeat(r.Context(), seatID)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// DeleteSeat handles DELETE /api/admin/seats/{id}
func (h *CatalogHandler) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	seatID := chi.URLParam(r, "id")
	if seatID == "" {
		utils.ResponseBadRequest(w, "Seat ID is required", nil)
		return
	}

	if err := h.service.DeleteSeat(r.Context(), seatID); err != nil {
		handleServiceError(h.log, w, err, "delete seat")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== SEAT TYPE ====================

// CreateSeatType handles POST /api/admin/seat-types
func (h *CatalogHandler) CreateSeatType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSeatTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seatType, err := h.service.CreateSeatType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create seat type")
		return
	}

	utils.ResponseCreated(w, "success", seatType)
}

// ListSeatTypes handles GET /api/admin/seat-types
func (h *CatalogHandler) ListSeatTypes(w http.ResponseWriter, r *http.Request) {
	seatTypes, err := h.service.ListSeatTypes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list seat types")
		return
	}

	utils.ResponseSuccess(w, "success", seatTypes)
}

// GetSeatType handles GET /api/admin/seat-types/{id}
func (h *CatalogHandler) GetSeatType(w http.ResponseWriter, r *http.Request) {
	seatTypeID := chi.URLParam(r, "id")
	if seatTypeID == "" {
		utils.ResponseBadRequest(w, "Seat type ID is required", nil)
		return
	}

	resp, err := h.service.GetSeatType(r.Context(), seatTypeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat type")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// DeleteSeatType handles DELETE /api/admin/seat-types/{id}
func (h *CatalogHandler) DeleteSeatType(w http.ResponseWriter, r *http.Request) {
	seatTypeID := chi.URLParam(r, "id")
	if seatTypeID == "" {
		utils.ResponseBadRequest(w, "Seat type ID is required", nil)
		return
	}

	if err := h.service.DeleteSeatType(r.Context(), seatTypeID); err != nil {
		handleServiceError(h.log, w, err, "delete seat type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

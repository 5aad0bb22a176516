package adaptor

import (
	"errors"
	"net/http"

	"cinema-showings/internal/usecase"
	"cinema-showings/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Showing *ShowingHandler
	Booking *BookingHandler
	Catalog *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Showing: NewShowingHandler(service.Showing, log),
		Booking: NewBookingHandler(service.Booking, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
	}
}

// handleServiceError translates usecase failures into HTTP responses.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed validation",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrSeatUnavailable):
		log.Warn(operation+" failed - seat unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrShowingClosed):
		log.Warn(operation+" failed - showing closed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package usecase

import (
	"cinema-showings/internal/data/repository"
	"cinema-showings/pkg/database"
	"cinema-showings/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Showing ShowingService
	Booking BookingService
	Catalog CatalogService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Showing: NewShowingService(db, repo, config, log),
		Booking: NewBookingService(db, repo, config, log),
		Catalog: NewCatalogService(db, repo, log),
	}
}

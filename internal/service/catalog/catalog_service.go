package catalog

import (
	"context"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
)

type CatalogUseCase interface {
	ListAirlines(ctx context.Context) ([]domain.Airline, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
}

type CatalogService struct {
	airlines repository.AirlineRepository
	airports repository.AirportRepository
}

func NewCatalogService(airlines repository.AirlineRepository, airports repository.AirportRepository) *CatalogService {
	return &CatalogService{airlines: airlines, airports: airports}
}

func (s *CatalogService) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	return s.airlines.List(ctx)
}

func (s *CatalogService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.airports.List(ctx)
}

var _ CatalogUseCase = (*CatalogService)(nil)

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/ports"
)

// DriverService serves the courier directory backing the matching screen.
type DriverService struct {
	repo   ports.DriverRepository
	logger zerolog.Logger
}

func NewDriverService(repo ports.DriverRepository, logger zerolog.Logger) *DriverService {
	return &DriverService{repo: repo, logger: logger}
}

// Nearby returns verified drivers currently online. Real proximity filtering
// needs live driver positions; until then every online driver is a candidate.
func (s *DriverService) Nearby(ctx context.Context) ([]*domain.Driver, error) {
	drivers, err := s.repo.ListOnline(ctx)
	if err != nil {
		return nil, fmt.Errorf("nearby drivers: %w", err)
	}
	return drivers, nil
}

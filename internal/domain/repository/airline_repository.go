package repository

import (
	"context"

	"bsm-service/internal/domain/entity"
)

// AirlineRepository defines the interface for airline operations
type AirlineRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Airline, error)
	ListWithNumericCode(ctx context.Context) ([]*entity.Airline, error)
}

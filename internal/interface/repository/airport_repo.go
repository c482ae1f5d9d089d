package repository

import (
	"context"
	"errors"
	"time"

	"bsm-service/internal/domain/entity"
	"bsm-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ID          uint           `gorm:"primaryKey"`
	Code        string         `gorm:"column:airportcode;unique"`
	Name        string         `gorm:"column:airport_name"`
	CityCode    string         `gorm:"column:citycode"`
	CityName    string         `gorm:"column:cityname"`
	Destination bool           `gorm:"column:is_destination"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "m_airports"
}

// GetByCode finds an airport by its IATA code
func (r *GormAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	var airport Airports
	result := r.db.WithContext(ctx).Unscoped().Where("airportcode = ?", code).First(&airport)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return airport.toEntity(), nil
}

// ListDestinations returns the active airports flagged as generator destinations
func (r *GormAirportRepository) ListDestinations(ctx context.Context) ([]*entity.Airport, error) {
	var rows []Airports
	result := r.db.WithContext(ctx).Where("is_destination = ?", true).Order("airportcode").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	airports := make([]*entity.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, row.toEntity())
	}
	return airports, nil
}

func (a Airports) toEntity() *entity.Airport {
	return &entity.Airport{
		ID:          a.ID,
		Code:        a.Code,
		Name:        a.Name,
		CityCode:    a.CityCode,
		CityName:    a.CityName,
		Destination: a.Destination,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		DeletedAt:   a.DeletedAt,
	}
}

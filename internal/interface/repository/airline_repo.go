package repository

import (
	"context"
	"errors"
	"time"

	"bsm-service/internal/domain/entity"
	"bsm-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirlineRepository implements the AirlineRepository interface
type GormAirlineRepository struct {
	db *gorm.DB
}

// NewGormAirlineRepository creates a new GORM airline repository
func NewGormAirlineRepository(db *gorm.DB) repository.AirlineRepository {
	return &GormAirlineRepository{
		db: db,
	}
}

// Airlines GORM model for database mapping
type Airlines struct {
	ID          uint           `gorm:"primaryKey"`
	Code        string         `gorm:"column:code;unique"`
	NumericCode string         `gorm:"column:numeric_code"`
	Name        string         `gorm:"column:name;unique"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Airlines) TableName() string {
	return "m_airlines"
}

// GetByCode finds an airline by code
func (r *GormAirlineRepository) GetByCode(ctx context.Context, code string) (*entity.Airline, error) {
	var airline Airlines
	result := r.db.WithContext(ctx).Unscoped().Where("code = ?", code).First(&airline)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return airline.toEntity(), nil
}

// ListWithNumericCode returns the active airlines that have a numeric code, ordered by id
func (r *GormAirlineRepository) ListWithNumericCode(ctx context.Context) ([]*entity.Airline, error) {
	var rows []Airlines
	result := r.db.WithContext(ctx).
		Where("numeric_code IS NOT NULL AND numeric_code <> ''").
		Order("id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	airlines := make([]*entity.Airline, 0, len(rows))
	for _, row := range rows {
		airlines = append(airlines, row.toEntity())
	}
	return airlines, nil
}

// Convert GORM model to domain entity
func (a Airlines) toEntity() *entity.Airline {
	return &entity.Airline{
		ID:          a.ID,
		Code:        a.Code,
		NumericCode: a.NumericCode,
		Name:        a.Name,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		DeletedAt:   a.DeletedAt,
	}
}

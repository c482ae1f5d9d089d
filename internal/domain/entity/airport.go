package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport represents an airport a generated flight can fly to
type Airport struct {
	ID          uint
	Code        string
	Name        string
	CityCode    string
	CityName    string
	Destination bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CompanyID string    `json:"company_id"`
	Company   Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Duration  int       `json:"duration"` // minutes
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// DurationD returns the service duration as a time.Duration.
func (s *Service) DurationD() time.Duration {
	return time.Duration(s.Duration) * time.Minute
}

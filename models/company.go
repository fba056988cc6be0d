package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name"`
	LegalName     string         `json:"legal_name"`
	TaxID         string         `json:"tax_id" gorm:"unique"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	Professionals []Professional `json:"professionals,omitempty" gorm:"foreignKey:CompanyID"`
	Services      []Service      `json:"services,omitempty" gorm:"foreignKey:CompanyID"`
	WorkingHours  []WorkingHours `json:"working_hours,omitempty" gorm:"foreignKey:CompanyID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (co *Company) BeforeCreate(tx *gorm.DB) error {
	if co.ID == "" {
		co.ID = uuid.New().String()
	}
	return nil
}

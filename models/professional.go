package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Professional struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	Email        string        `json:"email" gorm:"unique"`
	CompanyID    string        `json:"company_id"`
	Company      Company       `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Services     []Service     `json:"services,omitempty" gorm:"many2many:professional_services"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:ProfessionalID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

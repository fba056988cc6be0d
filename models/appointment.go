package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCanceled  AppointmentStatus = "CANCELED"
)

// Valid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type Appointment struct {
	ID             string            `json:"id" gorm:"primaryKey"`
	CompanyID      string            `json:"company_id"`
	Company        Company           `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	ProfessionalID string            `json:"professional_id" gorm:"index"`
	Professional   Professional      `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	ServiceID      string            `json:"service_id"`
	Service        Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	ClientName     string            `json:"client_name"`
	Price          float64           `json:"price"`
	StartTime      time.Time         `json:"start_time"`
	EndTime        time.Time         `json:"end_time"`
	Status         AppointmentStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

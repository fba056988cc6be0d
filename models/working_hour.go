package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

type WorkingHours struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CompanyID string    `json:"company_id" gorm:"uniqueIndex:idx_working_hours_company_day"`
	Company   Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	DayOfWeek DayOfWeek `json:"day_of_week" gorm:"uniqueIndex:idx_working_hours_company_day"`
	OpenTime  string    `json:"open_time"`  // Format "HH:MM" in 24h
	CloseTime string    `json:"close_time"` // Format "HH:MM" in 24h
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WorkingHours) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

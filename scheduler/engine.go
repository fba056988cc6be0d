package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/agendafacil/backend/models"
	"gorm.io/gorm"
)

// Engine is the scheduling and conflict-prevention core. Slot queries are
// read-only and lock-free; bookings are serialized per professional through
// the NamedLock so concurrent attempts can never commit overlapping
// appointments.
type Engine struct {
	db   *gorm.DB
	lock NamedLock
}

func New(db *gorm.DB, lock NamedLock) *Engine {
	return &Engine{db: db, lock: lock}
}

type CreateBookingInput struct {
	CompanyID      string    `json:"company_id"`
	ProfessionalID string    `json:"professional_id"`
	ServiceID      string    `json:"service_id"`
	ClientName     string    `json:"client_name"`
	StartTime      time.Time `json:"start_time"`
}

type UpdateBookingInput struct {
	StartTime  *time.Time                `json:"start_time"`
	ServiceID  *string                   `json:"service_id"`
	Status     *models.AppointmentStatus `json:"status"`
	ClientName *string                   `json:"client_name"`
}

// AvailableSlots enumerates the candidate start times for a company's
// professional on the given date, stepping by the requested service's
// duration. It reads current persisted state without locking, so a displayed
// slot can still lose the race to a concurrent booking; CreateBooking's
// recheck is the authoritative test.
func (e *Engine) AvailableSlots(ctx context.Context, companyID, professionalID string, date time.Time, serviceID string) ([]Slot, error) {
	if companyID == "" || professionalID == "" || serviceID == "" {
		return nil, newError(KindValidation, "company_id, professional_id and service_id are required")
	}

	service, err := e.resolveService(ctx, serviceID, companyID)
	if err != nil {
		return nil, err
	}

	window, open, err := e.resolveWindow(ctx, companyID, date)
	if err != nil {
		return nil, err
	}
	if !open {
		return []Slot{}, nil
	}

	busy, err := e.busyIntervals(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	return EnumerateSlots([]Window{window}, service.DurationD(), busy), nil
}

// CreateBooking runs the VALIDATE → LOCK → RECHECK → COMMIT sequence for a
// new appointment. Of any set of concurrent attempts for the same
// professional with overlapping ranges, exactly one commits; the rest
// observe a CONFLICT error.
func (e *Engine) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Appointment, error) {
	if in.CompanyID == "" || in.ProfessionalID == "" || in.ServiceID == "" {
		return nil, newError(KindValidation, "company_id, professional_id and service_id are required")
	}
	if in.ClientName == "" {
		return nil, newError(KindValidation, "client_name is required")
	}
	if in.StartTime.IsZero() {
		return nil, newError(KindValidation, "start_time is required")
	}

	service, err := e.resolveService(ctx, in.ServiceID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	start := in.StartTime
	end := start.Add(service.DurationD())

	if err := e.checkWithinHours(ctx, in.CompanyID, start, end); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		CompanyID:      in.CompanyID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      service.ID,
		ClientName:     in.ClientName,
		Price:          service.Price,
		StartTime:      start,
		EndTime:        end,
		Status:         models.StatusPending,
	}

	err = e.reserve(ctx, in.ProfessionalID, func(tx *gorm.DB) error {
		if err := recheckConflicts(tx, in.ProfessionalID, "", start, end); err != nil {
			return err
		}
		if err := tx.Create(appointment).Error; err != nil {
			return internalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// UpdateBooking reschedules or restates an existing appointment through the
// same serialized path as creation, excluding the appointment itself from
// the conflict recheck so it can move within its own prior range. Updates
// that change neither start time nor service keep the stored times untouched
// and skip the working-hours check, so status transitions (cancel, complete)
// stay possible after the weekday's hours were edited or removed.
func (e *Engine) UpdateBooking(ctx context.Context, appointmentID string, in UpdateBookingInput) (*models.Appointment, error) {
	if appointmentID == "" {
		return nil, newError(KindValidation, "appointment id is required")
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, newError(KindValidation, "invalid status")
	}

	var appointment models.Appointment
	if err := e.db.WithContext(ctx).First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, "appointment not found")
		}
		return nil, internalError(err)
	}

	start := appointment.StartTime
	end := appointment.EndTime

	if in.StartTime != nil || in.ServiceID != nil {
		serviceID := appointment.ServiceID
		if in.ServiceID != nil {
			serviceID = *in.ServiceID
		}
		service, err := e.resolveService(ctx, serviceID, appointment.CompanyID)
		if err != nil {
			return nil, err
		}

		if in.StartTime != nil {
			start = *in.StartTime
		}
		end = start.Add(service.DurationD())

		if err := e.checkWithinHours(ctx, appointment.CompanyID, start, end); err != nil {
			return nil, err
		}

		appointment.ServiceID = service.ID
		appointment.StartTime = start
		appointment.EndTime = end
		if in.ServiceID != nil {
			appointment.Price = service.Price
		}
	}

	if in.Status != nil {
		appointment.Status = *in.Status
	}
	if in.ClientName != nil {
		appointment.ClientName = *in.ClientName
	}

	err := e.reserve(ctx, appointment.ProfessionalID, func(tx *gorm.DB) error {
		if err := recheckConflicts(tx, appointment.ProfessionalID, appointment.ID, start, end); err != nil {
			return err
		}
		if err := tx.Save(&appointment).Error; err != nil {
			return internalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// reserve opens a transaction, takes the professional's named lock inside it
// and runs fn. A release returned by the lock implementation is invoked only
// after the transaction has fully committed or rolled back, so no state is
// partially visible to the next lock holder.
func (e *Engine) reserve(ctx context.Context, professionalID string, fn func(tx *gorm.DB) error) error {
	key1, key2 := LockKeys(professionalID)

	var release func()
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := e.lock.Acquire(tx, key1, key2)
		if err != nil {
			return internalError(err)
		}
		release = r
		return fn(tx)
	})
	if release != nil {
		release()
	}
	if err != nil {
		if engineErr := AsError(err); engineErr != nil {
			return engineErr
		}
		return internalError(err)
	}
	return nil
}

// recheckConflicts is the in-lock verification guarding against races missed
// by the unlocked validation. Appointments of every status count toward
// conflicts, canceled included. The query is bounded to rows touching the
// contested range; the in-memory overlap loop stays the authoritative filter.
func recheckConflicts(tx *gorm.DB, professionalID, excludeID string, start, end time.Time) error {
	var existing []models.Appointment
	q := tx.Where("professional_id = ? AND start_time < ? AND end_time > ?", professionalID, end, start)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&existing).Error; err != nil {
		return internalError(err)
	}
	for _, a := range existing {
		if Overlaps(start, end, a.StartTime, a.EndTime) {
			return newError(KindConflict, "time slot not available")
		}
	}
	return nil
}

func (e *Engine) resolveService(ctx context.Context, serviceID, companyID string) (*models.Service, error) {
	var service models.Service
	err := e.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", serviceID, companyID).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, "service not found or does not belong to company")
		}
		return nil, internalError(err)
	}
	if service.Duration <= 0 {
		return nil, newError(KindValidation, "service has no duration")
	}
	return &service, nil
}

func (e *Engine) resolveWindow(ctx context.Context, companyID string, date time.Time) (Window, bool, error) {
	var hours []models.WorkingHours
	if err := e.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&hours).Error; err != nil {
		return Window{}, false, internalError(err)
	}
	window, open, err := ResolveWindow(date, hours)
	if err != nil {
		return Window{}, false, &Error{Kind: KindInternal, Message: "invalid working hours configuration", Details: err.Error()}
	}
	return window, open, nil
}

func (e *Engine) checkWithinHours(ctx context.Context, companyID string, start, end time.Time) error {
	window, open, err := e.resolveWindow(ctx, companyID, start)
	if err != nil {
		return err
	}
	if !open || !window.Contains(start, end) {
		return newError(KindOutOfHours, "appointment is outside working hours")
	}
	return nil
}

// busyIntervals loads the professional's appointments for the date and turns
// them into occupied ranges. Each range ends at start plus the appointment's
// own service duration, falling back to the stored end time.
func (e *Engine) busyIntervals(ctx context.Context, professionalID string, date time.Time) ([]Interval, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var appointments []models.Appointment
	err := e.db.WithContext(ctx).
		Preload("Service").
		Where("professional_id = ? AND start_time >= ? AND start_time < ?", professionalID, dayStart, dayEnd).
		Find(&appointments).Error
	if err != nil {
		return nil, internalError(err)
	}

	busy := make([]Interval, 0, len(appointments))
	for _, a := range appointments {
		end := a.EndTime
		if a.Service.Duration > 0 {
			end = a.StartTime.Add(a.Service.DurationD())
		}
		busy = append(busy, Interval{Start: a.StartTime, End: end})
	}
	return busy, nil
}

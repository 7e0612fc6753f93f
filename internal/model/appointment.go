package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed out of s.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransitionTo enforces the directed status graph:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
// Writing the current status again is a no-op and always allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case AppointmentStatusPending:
		return next == AppointmentStatusConfirmed || next == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
	default:
		return false
	}
}

// MaxStaffPreferences caps the ranked preference list a booking user may
// submit.
const MaxStaffPreferences = 3

// StaffPreferences is the ordered list of preferred staff ids. Stored as a
// Postgres uuid[] column.
type StaffPreferences []uuid.UUID

func (p StaffPreferences) Value() (driver.Value, error) {
	ids := make(pq.StringArray, len(p))
	for i, id := range p {
		ids[i] = id.String()
	}
	return ids.Value()
}

func (p *StaffPreferences) Scan(src interface{}) error {
	var raw pq.StringArray
	if err := raw.Scan(src); err != nil {
		return fmt.Errorf("failed to scan staff preferences: %w", err)
	}
	out := make(StaffPreferences, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("invalid staff preference id %q: %w", s, err)
		}
		out = append(out, id)
	}
	*p = out
	return nil
}

// Appointment is the booking record. Date and time are kept in the wire
// formats (YYYY-MM-DD, HH:MM 24h); company and service are immutable after
// creation.
type Appointment struct {
	Base
	UserID           uuid.UUID         `json:"user_id" db:"user_id"`
	CompanyID        uuid.UUID         `json:"company_id" db:"company_id"`
	ServiceID        uuid.UUID         `json:"service_id" db:"service_id"`
	StaffID          *uuid.UUID        `json:"staff_id,omitempty" db:"staff_id"`
	StaffPreferences StaffPreferences  `json:"staff_preferences,omitempty" db:"staff_preferences"`
	AppointmentDate  string            `json:"appointment_date" db:"appointment_date"`
	AppointmentTime  string            `json:"appointment_time" db:"appointment_time"`
	Status           AppointmentStatus `json:"status" db:"status"`
	Notes            string            `json:"notes,omitempty" db:"notes"`
}

// DisplayDuration is the fixed slot length assumed for calendar rendering,
// independent of the service's declared duration.
const DisplayDuration = time.Hour

// StartTime resolves the scheduled instant from the date and time fields.
func (a *Appointment) StartTime() (time.Time, error) {
	return ParseAppointmentDateTime(a.AppointmentDate, a.AppointmentTime)
}

// ParseAppointmentDateTime validates the wire formats. time.Parse rejects
// impossible calendar dates such as 2024-02-30, unlike the regex-only
// validation this replaces.
func ParseAppointmentDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}

type CreateAppointmentRequest struct {
	// UserID may only be supplied by an owner or admin booking on a
	// customer's behalf; everyone else books for themselves.
	UserID           *uuid.UUID  `json:"user_id"`
	CompanyID        uuid.UUID   `json:"company_id" binding:"required"`
	ServiceID        uuid.UUID   `json:"service_id" binding:"required"`
	AppointmentDate  string      `json:"appointment_date" binding:"required"`
	AppointmentTime  string      `json:"appointment_time" binding:"required"`
	Notes            string      `json:"notes" binding:"max=1000"`
	StaffID          *uuid.UUID  `json:"staff_id"`
	StaffPreferences []uuid.UUID `json:"staff_preferences" binding:"omitempty,max=3"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate  *string            `json:"appointment_date"`
	AppointmentTime  *string            `json:"appointment_time"`
	Notes            *string            `json:"notes" binding:"omitempty,max=1000"`
	Status           *AppointmentStatus `json:"status"`
	StaffID          *uuid.UUID         `json:"staff_id"`
	StaffPreferences *StaffPreferences  `json:"staff_preferences"`
}

// HasRestrictedFields reports whether the update touches fields writable only
// by admin or owner roles.
func (r *UpdateAppointmentRequest) HasRestrictedFields() bool {
	return r.Status != nil || r.StaffID != nil || r.StaffPreferences != nil
}

// StripRestrictedFields removes the admin/owner-only fields, leaving the
// date, time and notes a regular user may change.
func (r *UpdateAppointmentRequest) StripRestrictedFields() {
	r.Status = nil
	r.StaffID = nil
	r.StaffPreferences = nil
}

// UpdateAppointmentStatusRequest drives the assignment workflow: status and
// staff binding land in one atomic write.
type UpdateAppointmentStatusRequest struct {
	Status  AppointmentStatus `json:"status" binding:"required"`
	StaffID *uuid.UUID        `json:"staff_id"`
}

type AppointmentFilters struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
	StaffID   uuid.UUID
	Status    AppointmentStatus
	FromDate  string
	ToDate    string
}

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type StaffStatus string

const (
	StaffStatusActive     StaffStatus = "ACTIVE"
	StaffStatusInactive   StaffStatus = "INACTIVE"
	StaffStatusSuspended  StaffStatus = "SUSPENDED"
	StaffStatusTerminated StaffStatus = "TERMINATED"
)

func (s StaffStatus) Valid() bool {
	switch s {
	case StaffStatusActive, StaffStatusInactive, StaffStatusSuspended, StaffStatusTerminated:
		return true
	}
	return false
}

// Staff is a user account staffed at a company. An account can be staffed at
// many companies but at most once per company.
type Staff struct {
	Base
	UserID                     uuid.UUID   `json:"user_id" db:"user_id"`
	CompanyID                  uuid.UUID   `json:"company_id" db:"company_id"`
	WorkingHoursStart          *string     `json:"working_hours_start,omitempty" db:"working_hours_start"`
	WorkingHoursEnd            *string     `json:"working_hours_end,omitempty" db:"working_hours_end"`
	Skills                     string      `json:"skills" db:"skills"`
	ProfessionalQualifications string      `json:"professional_qualifications" db:"professional_qualifications"`
	Status                     StaffStatus `json:"status" db:"status"`
}

type CreateStaffRequest struct {
	UserID                     uuid.UUID `json:"user_id" binding:"required"`
	CompanyID                  uuid.UUID `json:"company_id" binding:"required"`
	WorkingHoursStart          *string   `json:"working_hours_start"`
	WorkingHoursEnd            *string   `json:"working_hours_end"`
	Skills                     string    `json:"skills" binding:"max=1000"`
	ProfessionalQualifications string    `json:"professional_qualifications" binding:"max=1000"`
}

// UpdateStaffRequest is a partial update; user_id and company_id are
// immutable after creation.
type UpdateStaffRequest struct {
	WorkingHoursStart          *string      `json:"working_hours_start"`
	WorkingHoursEnd            *string      `json:"working_hours_end"`
	Skills                     *string      `json:"skills" binding:"omitempty,max=1000"`
	ProfessionalQualifications *string      `json:"professional_qualifications" binding:"omitempty,max=1000"`
	Status                     *StaffStatus `json:"status"`
}

// ValidateWorkingHours checks HH:MM formats and that end is strictly after
// start when both are present.
func ValidateWorkingHours(start, end *string) error {
	var startT, endT time.Time
	var err error

	if start != nil {
		startT, err = time.Parse("15:04", *start)
		if err != nil {
			return fmt.Errorf("invalid working hours start %q: must be HH:MM", *start)
		}
	}
	if end != nil {
		endT, err = time.Parse("15:04", *end)
		if err != nil {
			return fmt.Errorf("invalid working hours end %q: must be HH:MM", *end)
		}
	}
	if start != nil && end != nil && !endT.After(startT) {
		return fmt.Errorf("working hours end must be after start")
	}
	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/model"
)

// All repository interfaces in one file
type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		Update(ctx context.Context, user *model.User) error
		List(ctx context.Context, filters *model.UserFilters) ([]*model.User, error)
		// ListNotStaffedAt returns accounts without a staff record at the
		// given company, for the "available users" picker.
		ListNotStaffedAt(ctx context.Context, companyID uuid.UUID) ([]*model.User, error)
	}

	CompanyRepository interface {
		Create(ctx context.Context, company *model.Company) error
		Get(ctx context.Context, id uuid.UUID) (*model.Company, error)
		ListByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*model.Company, error)
		ExistsNameForOwner(ctx context.Context, ownerUserID uuid.UUID, name string) (bool, error)
		Update(ctx context.Context, company *model.Company) error
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.CompanyStatus) error
		List(ctx context.Context) ([]*model.Company, error)
	}

	StaffRepository interface {
		Create(ctx context.Context, staff *model.Staff) error
		Get(ctx context.Context, id uuid.UUID) (*model.Staff, error)
		Update(ctx context.Context, staff *model.Staff) error
		// Delete removes the staff record and nullifies staff_id on any
		// appointment referencing it, in one transaction.
		Delete(ctx context.Context, id uuid.UUID) error
		ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Staff, error)
		ExistsForUserAtCompany(ctx context.Context, userID, companyID uuid.UUID) (bool, error)
	}

	ServiceRepository interface {
		Create(ctx context.Context, service *model.Service) error
		Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
		Update(ctx context.Context, service *model.Service) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Service, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		// UpdateStatus sets status and staff assignment in a single
		// statement so confirmation and binding are one observable
		// transition.
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus, staffID *uuid.UUID) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEventsWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errorMessage *string, retryAt *time.Time) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}

	AuditRepository interface {
		Create(ctx context.Context, log *model.AuditLog) error
		List(ctx context.Context, filters map[string]interface{}) ([]*model.AuditLog, error)
		DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	}
)

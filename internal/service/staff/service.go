package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/repository"
	"github.com/salonhub/booking-api/internal/service/audit"
	"github.com/salonhub/booking-api/internal/service/event"
	"github.com/salonhub/booking-api/pkg/apperror"
)

type Service struct {
	staff     repository.StaffRepository
	users     repository.UserRepository
	companies repository.CompanyRepository
	events    event.Emitter
	auditor   *audit.Service
}

func NewService(staff repository.StaffRepository, users repository.UserRepository,
	companies repository.CompanyRepository, events event.Emitter, auditor *audit.Service) *Service {
	return &Service{
		staff:     staff,
		users:     users,
		companies: companies,
		events:    events,
		auditor:   auditor,
	}
}

func (s *Service) canManageCompany(ctx context.Context, actor *model.TokenClaims, companyID uuid.UUID) error {
	if actor.Role.IsAdmin() {
		return nil
	}
	if !actor.Role.IsOwner() {
		return apperror.Permission("not allowed to manage staff")
	}
	company, err := s.companies.Get(ctx, companyID)
	if err != nil {
		return apperror.NotFound("company", err)
	}
	if company.OwnerUserID != actor.UserID {
		return apperror.Permission("not allowed to manage staff for this company")
	}
	return nil
}

// Create staffs a user at a company. A user can be staffed at most once per
// company; a second attempt conflicts.
func (s *Service) Create(ctx context.Context, actor *model.TokenClaims, req *model.CreateStaffRequest) (*model.Staff, error) {
	if err := s.canManageCompany(ctx, actor, req.CompanyID); err != nil {
		return nil, err
	}

	if err := model.ValidateWorkingHours(req.WorkingHoursStart, req.WorkingHoursEnd); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	if _, err := s.users.Get(ctx, req.UserID); err != nil {
		return nil, apperror.NotFound("user", err)
	}

	exists, err := s.staff.ExistsForUserAtCompany(ctx, req.UserID, req.CompanyID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("user is already staffed at this company")
	}

	staff := &model.Staff{
		Base:                       model.Base{ID: uuid.New()},
		UserID:                     req.UserID,
		CompanyID:                  req.CompanyID,
		WorkingHoursStart:          req.WorkingHoursStart,
		WorkingHoursEnd:            req.WorkingHoursEnd,
		Skills:                     req.Skills,
		ProfessionalQualifications: req.ProfessionalQualifications,
		Status:                     model.StaffStatusActive,
	}

	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, apperror.Internal(err)
	}

	s.auditor.Log(ctx, actor.UserID, staff.CompanyID, "create", "staff", staff.ID, &audit.LogOptions{
		Changes: staff,
	})

	return staff, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	staff, err := s.staff.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("staff", err)
	}
	return staff, nil
}

// ListByCompany returns the full roster regardless of status; callers filter
// for their own purposes.
func (s *Service) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Staff, error) {
	roster, err := s.staff.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return roster, nil
}

// ListAvailableUsers returns accounts for the staffing picker. By default
// accounts already staffed at the company are excluded; includeStaffed lifts
// the exclusion and browses every account.
func (s *Service) ListAvailableUsers(ctx context.Context, actor *model.TokenClaims, companyID uuid.UUID, includeStaffed bool) ([]*model.User, error) {
	if err := s.canManageCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	var users []*model.User
	var err error
	if includeStaffed {
		users, err = s.users.List(ctx, &model.UserFilters{})
	} else {
		users, err = s.users.ListNotStaffedAt(ctx, companyID)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

// Update applies a partial update. UserID and CompanyID are immutable.
func (s *Service) Update(ctx context.Context, actor *model.TokenClaims, id uuid.UUID, req *model.UpdateStaffRequest) (*model.Staff, error) {
	staff, err := s.staff.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("staff", err)
	}

	if err := s.canManageCompany(ctx, actor, staff.CompanyID); err != nil {
		return nil, err
	}

	start := staff.WorkingHoursStart
	end := staff.WorkingHoursEnd
	if req.WorkingHoursStart != nil {
		start = req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != nil {
		end = req.WorkingHoursEnd
	}
	if err := model.ValidateWorkingHours(start, end); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	staff.WorkingHoursStart = start
	staff.WorkingHoursEnd = end

	if req.Skills != nil {
		staff.Skills = *req.Skills
	}
	if req.ProfessionalQualifications != nil {
		staff.ProfessionalQualifications = *req.ProfessionalQualifications
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperror.Validationf("invalid staff status: %s", *req.Status)
		}
		staff.Status = *req.Status
	}

	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, apperror.Internal(err)
	}

	s.auditor.Log(ctx, actor.UserID, staff.CompanyID, "update", "staff", staff.ID, &audit.LogOptions{
		Changes: req,
	})

	return staff, nil
}

// Delete removes a staff record. Appointments pointing at it have their
// staff assignment cleared in the same transaction; ids left in preference
// lists go stale and are tolerated by the resolver.
func (s *Service) Delete(ctx context.Context, actor *model.TokenClaims, id uuid.UUID) error {
	staff, err := s.staff.Get(ctx, id)
	if err != nil {
		return apperror.NotFound("staff", err)
	}

	if err := s.canManageCompany(ctx, actor, staff.CompanyID); err != nil {
		return err
	}

	if err := s.staff.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}

	s.events.Emit(ctx, model.EventStaffRemoved, map[string]interface{}{
		"staff_id":   staff.ID,
		"company_id": staff.CompanyID,
		"user_id":    staff.UserID,
	})

	s.auditor.Log(ctx, actor.UserID, staff.CompanyID, "delete", "staff", id, nil)

	return nil
}

package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/email"
	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/repository"
	"github.com/salonhub/booking-api/internal/service/audit"
	"github.com/salonhub/booking-api/internal/service/event"
	"github.com/salonhub/booking-api/pkg/apperror"
	"github.com/salonhub/booking-api/pkg/logger"
	"github.com/salonhub/booking-api/pkg/metrics"
)

// ErrSelectStaff is the validation message shown when a confirmation is
// attempted without a staff member.
const ErrSelectStaff = "please select a staff member"

type Service struct {
	appointments repository.AppointmentRepository
	staff        repository.StaffRepository
	services     repository.ServiceRepository
	companies    repository.CompanyRepository
	users        repository.UserRepository
	events       event.Emitter
	emailSvc     email.Service
	auditor      *audit.Service
	metrics      *metrics.Metrics
	logger       *logger.Logger
}

func NewService(
	appointments repository.AppointmentRepository,
	staff repository.StaffRepository,
	services repository.ServiceRepository,
	companies repository.CompanyRepository,
	users repository.UserRepository,
	events event.Emitter,
	emailSvc email.Service,
	auditor *audit.Service,
	m *metrics.Metrics,
	l *logger.Logger,
) *Service {
	return &Service{
		appointments: appointments,
		staff:        staff,
		services:     services,
		companies:    companies,
		users:        users,
		events:       events,
		emailSvc:     emailSvc,
		auditor:      auditor,
		metrics:      m,
		logger:       l,
	}
}

// Create books an appointment in pending status. Regular users book for
// themselves; owners and admins may book on a customer's behalf by supplying
// user_id. Company and service are fixed at creation.
func (s *Service) Create(ctx context.Context, actor *model.TokenClaims, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if _, err := model.ParseAppointmentDateTime(req.AppointmentDate, req.AppointmentTime); err != nil {
		return nil, apperror.Validation("invalid appointment date or time")
	}

	if len(req.StaffPreferences) > model.MaxStaffPreferences {
		return nil, apperror.Validationf("at most %d staff preferences allowed", model.MaxStaffPreferences)
	}

	userID := actor.UserID
	if req.UserID != nil && *req.UserID != actor.UserID {
		if !actor.Role.CanManageBookings() {
			return nil, apperror.Permission("cannot book on behalf of another user")
		}
		userID = *req.UserID
	}

	svc, err := s.services.Get(ctx, req.ServiceID)
	if err != nil {
		return nil, apperror.NotFound("service", err)
	}
	if svc.CompanyID != req.CompanyID {
		return nil, apperror.Validation("service does not belong to this company")
	}

	// Direct staff binding at creation is an owner/admin shortcut; for
	// everyone else the field is dropped, same as on update.
	staffID := req.StaffID
	if staffID != nil && !actor.Role.CanManageBookings() {
		staffID = nil
	}
	if staffID != nil {
		if err := s.checkStaffAssignable(ctx, *staffID, req.CompanyID); err != nil {
			return nil, err
		}
	}

	appointment := &model.Appointment{
		Base:             model.Base{ID: uuid.New()},
		UserID:           userID,
		CompanyID:        req.CompanyID,
		ServiceID:        req.ServiceID,
		StaffID:          staffID,
		StaffPreferences: model.StaffPreferences(req.StaffPreferences),
		AppointmentDate:  req.AppointmentDate,
		AppointmentTime:  req.AppointmentTime,
		Status:           model.AppointmentStatusPending,
		Notes:            req.Notes,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, apperror.Internal(err)
	}

	s.metrics.AppointmentsCreated.Inc()
	s.events.Emit(ctx, model.EventAppointmentCreated, appointment)
	s.auditor.Log(ctx, actor.UserID, appointment.CompanyID, "create", "appointment", appointment.ID, &audit.LogOptions{
		Changes: appointment,
	})

	return appointment, nil
}

func (s *Service) Get(ctx context.Context, actor *model.TokenClaims, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("appointment", err)
	}

	if err := s.canAccess(ctx, actor, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// List is role-scoped: admins see everything the filters allow, owners their
// companies, users their own bookings.
func (s *Service) List(ctx context.Context, actor *model.TokenClaims, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	if filters == nil {
		filters = &model.AppointmentFilters{}
	}

	switch {
	case actor.Role.IsAdmin():
		// No extra scoping.
	case actor.Role.IsOwner():
		if filters.CompanyID != uuid.Nil {
			if err := s.checkOwnership(ctx, actor, filters.CompanyID); err != nil {
				return nil, err
			}
		} else {
			return s.listForOwner(ctx, actor, filters)
		}
	default:
		filters.UserID = actor.UserID
	}

	appointments, err := s.appointments.List(ctx, filters)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return appointments, nil
}

func (s *Service) listForOwner(ctx context.Context, actor *model.TokenClaims, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	companies, err := s.companies.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var out []*model.Appointment
	for _, company := range companies {
		scoped := *filters
		scoped.CompanyID = company.ID
		appointments, err := s.appointments.List(ctx, &scoped)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		out = append(out, appointments...)
	}
	return out, nil
}

// Update applies a partial update. Status, staff assignment and preferences
// are writable only by admins and owners; for a regular user editing their
// own booking those fields are stripped and the rest applied.
func (s *Service) Update(ctx context.Context, actor *model.TokenClaims, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("appointment", err)
	}

	if err := s.canAccess(ctx, actor, appointment); err != nil {
		return nil, err
	}

	if !actor.Role.CanManageBookings() {
		req.StripRestrictedFields()
	}

	date := appointment.AppointmentDate
	clock := appointment.AppointmentTime
	if req.AppointmentDate != nil {
		date = *req.AppointmentDate
	}
	if req.AppointmentTime != nil {
		clock = *req.AppointmentTime
	}
	if _, err := model.ParseAppointmentDateTime(date, clock); err != nil {
		return nil, apperror.Validation("invalid appointment date or time")
	}
	appointment.AppointmentDate = date
	appointment.AppointmentTime = clock

	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperror.Validationf("invalid appointment status: %s", *req.Status)
		}
		if !appointment.Status.CanTransitionTo(*req.Status) {
			return nil, apperror.Validationf("cannot change status from %s to %s", appointment.Status, *req.Status)
		}
		appointment.Status = *req.Status
	}

	if req.StaffID != nil {
		if err := s.checkStaffAssignable(ctx, *req.StaffID, appointment.CompanyID); err != nil {
			return nil, err
		}
		appointment.StaffID = req.StaffID
	}

	if req.StaffPreferences != nil {
		if len(*req.StaffPreferences) > model.MaxStaffPreferences {
			return nil, apperror.Validationf("at most %d staff preferences allowed", model.MaxStaffPreferences)
		}
		appointment.StaffPreferences = *req.StaffPreferences
	}

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, apperror.Internal(err)
	}

	s.events.Emit(ctx, model.EventAppointmentUpdated, appointment)
	s.auditor.Log(ctx, actor.UserID, appointment.CompanyID, "update", "appointment", appointment.ID, &audit.LogOptions{
		Changes: req,
	})

	return appointment, nil
}

// UpdateStatus runs the assignment workflow. Confirming binds the staff
// member in the same atomic write as the status change; an appointment is
// never observable as confirmed-but-unassigned.
func (s *Service) UpdateStatus(ctx context.Context, actor *model.TokenClaims, id uuid.UUID, req *model.UpdateAppointmentStatusRequest) (*model.Appointment, error) {
	if !actor.Role.CanManageBookings() {
		return nil, apperror.Permission("not allowed to change appointment status")
	}

	if !req.Status.Valid() {
		return nil, apperror.Validationf("invalid appointment status: %s", req.Status)
	}

	appointment, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("appointment", err)
	}

	if actor.Role.IsOwner() {
		if err := s.checkOwnership(ctx, actor, appointment.CompanyID); err != nil {
			return nil, err
		}
	}

	if !appointment.Status.CanTransitionTo(req.Status) {
		return nil, apperror.Validationf("cannot change status from %s to %s", appointment.Status, req.Status)
	}

	if req.Status == model.AppointmentStatusConfirmed && req.StaffID == nil && appointment.StaffID == nil {
		return nil, apperror.Validation(ErrSelectStaff)
	}

	if req.StaffID != nil {
		if err := s.checkStaffAssignable(ctx, *req.StaffID, appointment.CompanyID); err != nil {
			return nil, err
		}
	}

	if err := s.appointments.UpdateStatus(ctx, id, req.Status, req.StaffID); err != nil {
		return nil, apperror.Internal(err)
	}

	prevStatus := appointment.Status
	appointment.Status = req.Status
	if req.StaffID != nil {
		appointment.StaffID = req.StaffID
	}

	if req.Status == model.AppointmentStatusConfirmed && prevStatus != req.Status {
		s.metrics.AppointmentsAssigned.Inc()
	}

	s.events.Emit(ctx, model.EventAppointmentStatusChanged, map[string]interface{}{
		"appointment_id": appointment.ID,
		"company_id":     appointment.CompanyID,
		"from":           prevStatus,
		"to":             appointment.Status,
		"staff_id":       appointment.StaffID,
	})

	s.notifyStatusChange(ctx, appointment, prevStatus)

	s.auditor.Log(ctx, actor.UserID, appointment.CompanyID, "update_status", "appointment", appointment.ID, &audit.LogOptions{
		Metadata: map[string]interface{}{"from": prevStatus, "to": appointment.Status},
	})

	return appointment, nil
}

// Assign confirms an appointment and binds a staff member in one transition.
func (s *Service) Assign(ctx context.Context, actor *model.TokenClaims, id uuid.UUID, staffID *uuid.UUID) (*model.Appointment, error) {
	return s.UpdateStatus(ctx, actor, id, &model.UpdateAppointmentStatusRequest{
		Status:  model.AppointmentStatusConfirmed,
		StaffID: staffID,
	})
}

func (s *Service) Delete(ctx context.Context, actor *model.TokenClaims, id uuid.UUID) error {
	appointment, err := s.appointments.Get(ctx, id)
	if err != nil {
		return apperror.NotFound("appointment", err)
	}

	if err := s.canAccess(ctx, actor, appointment); err != nil {
		return err
	}

	if err := s.appointments.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}

	s.events.Emit(ctx, model.EventAppointmentDeleted, map[string]interface{}{
		"appointment_id": id,
		"company_id":     appointment.CompanyID,
	})
	s.auditor.Log(ctx, actor.UserID, appointment.CompanyID, "delete", "appointment", id, nil)

	return nil
}

// ResolveRoster partitions the company roster by the appointment's preference
// list, for the assignment picker. The appointment is returned alongside so
// the picker can render the slot being filled.
func (s *Service) ResolveRoster(ctx context.Context, actor *model.TokenClaims, id uuid.UUID) (*model.Appointment, *PreferenceResolution, *model.Staff, error) {
	appointment, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, nil, nil, apperror.NotFound("appointment", err)
	}

	if err := s.canAccess(ctx, actor, appointment); err != nil {
		return nil, nil, nil, err
	}

	roster, err := s.staff.ListByCompany(ctx, appointment.CompanyID)
	if err != nil {
		return nil, nil, nil, apperror.Internal(err)
	}

	res := ResolvePreferences(roster, appointment.StaffPreferences)
	suggestion := SuggestStaff(roster, appointment.StaffPreferences, appointment.StaffID)
	return appointment, &res, suggestion, nil
}

func (s *Service) canAccess(ctx context.Context, actor *model.TokenClaims, appointment *model.Appointment) error {
	if actor.Role.IsAdmin() || appointment.UserID == actor.UserID {
		return nil
	}
	if actor.Role.IsOwner() {
		return s.checkOwnership(ctx, actor, appointment.CompanyID)
	}
	return apperror.Permission("not allowed to access this appointment")
}

func (s *Service) checkOwnership(ctx context.Context, actor *model.TokenClaims, companyID uuid.UUID) error {
	company, err := s.companies.Get(ctx, companyID)
	if err != nil {
		return apperror.NotFound("company", err)
	}
	if company.OwnerUserID != actor.UserID {
		return apperror.Permission("not allowed to access this company's appointments")
	}
	return nil
}

// checkStaffAssignable verifies the staff member belongs to the company and
// is active.
func (s *Service) checkStaffAssignable(ctx context.Context, staffID, companyID uuid.UUID) error {
	staff, err := s.staff.Get(ctx, staffID)
	if err != nil {
		return apperror.NotFound("staff", err)
	}
	if staff.CompanyID != companyID {
		return apperror.Validation("staff member does not belong to this company")
	}
	if staff.Status != model.StaffStatusActive {
		return apperror.Validationf("staff member is %s", staff.Status)
	}
	return nil
}

// notifyStatusChange emails the booking user on confirmation and
// cancellation. Failures are logged and never fail the mutation.
func (s *Service) notifyStatusChange(ctx context.Context, appointment *model.Appointment, prev model.AppointmentStatus) {
	if appointment.Status == prev {
		return
	}

	var send func(ctx context.Context, to, name, date, clock string) error
	switch appointment.Status {
	case model.AppointmentStatusConfirmed:
		send = s.emailSvc.SendAppointmentConfirmed
	case model.AppointmentStatusCancelled:
		send = s.emailSvc.SendAppointmentCancelled
	default:
		return
	}

	user, err := s.users.Get(ctx, appointment.UserID)
	if err != nil {
		s.logger.Warn("failed to load user for notification", "appointment_id", appointment.ID.String(), "error", err.Error())
		return
	}

	if err := send(ctx, user.Email, user.Name, appointment.AppointmentDate, appointment.AppointmentTime); err != nil {
		s.logger.Warn("failed to send appointment notification", "appointment_id", appointment.ID.String(), "error", err.Error())
	}
}

package appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/repository"
	"github.com/salonhub/booking-api/internal/service/audit"
	"github.com/salonhub/booking-api/internal/service/event"
	"github.com/salonhub/booking-api/pkg/apperror"
	"github.com/salonhub/booking-api/pkg/logger"
	"github.com/salonhub/booking-api/pkg/metrics"
)

// Prometheus collectors register globally, so the test metrics are created
// once for the whole package.
var testMetrics = metrics.New("booking_test_appointment")

type fakeAppointmentRepo struct {
	items             map[uuid.UUID]*model.Appointment
	updateCalls       int
	updateStatusCalls int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{items: make(map[uuid.UUID]*model.Appointment)}
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("appointment not found")
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, a *model.Appointment) error {
	if _, ok := f.items[a.ID]; !ok {
		return fmt.Errorf("appointment not found")
	}
	f.updateCalls++
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus, staffID *uuid.UUID) error {
	a, ok := f.items[id]
	if !ok {
		return fmt.Errorf("appointment not found")
	}
	f.updateStatusCalls++
	a.Status = status
	if staffID != nil {
		a.StaffID = staffID
	}
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return fmt.Errorf("appointment not found")
	}
	delete(f.items, id)
	return nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range f.items {
		if filters != nil {
			if filters.CompanyID != uuid.Nil && a.CompanyID != filters.CompanyID {
				continue
			}
			if filters.UserID != uuid.Nil && a.UserID != filters.UserID {
				continue
			}
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

type fakeStaffRepo struct {
	items map[uuid.UUID]*model.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{items: make(map[uuid.UUID]*model.Staff)}
}

func (f *fakeStaffRepo) Create(ctx context.Context, s *model.Staff) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeStaffRepo) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("staff not found")
	}
	return s, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, s *model.Staff) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeStaffRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Staff, error) {
	var out []*model.Staff
	for _, s := range f.items {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) ExistsForUserAtCompany(ctx context.Context, userID, companyID uuid.UUID) (bool, error) {
	for _, s := range f.items {
		if s.UserID == userID && s.CompanyID == companyID {
			return true, nil
		}
	}
	return false, nil
}

type fakeServiceRepo struct {
	items map[uuid.UUID]*model.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{items: make(map[uuid.UUID]*model.Service)}
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *model.Service) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("service not found")
	}
	return s, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, s *model.Service) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeServiceRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Service, error) {
	var out []*model.Service
	for _, s := range f.items {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeCompanyRepo struct {
	items map[uuid.UUID]*model.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{items: make(map[uuid.UUID]*model.Company)}
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c *model.Company) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("company not found")
	}
	return c, nil
}

func (f *fakeCompanyRepo) ListByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*model.Company, error) {
	var out []*model.Company
	for _, c := range f.items {
		if c.OwnerUserID == ownerUserID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) ExistsNameForOwner(ctx context.Context, ownerUserID uuid.UUID, name string) (bool, error) {
	for _, c := range f.items {
		if c.OwnerUserID == ownerUserID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, c *model.Company) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CompanyStatus) error {
	c, ok := f.items[id]
	if !ok {
		return fmt.Errorf("company not found")
	}
	c.Status = status
	return nil
}

func (f *fakeCompanyRepo) List(ctx context.Context) ([]*model.Company, error) {
	var out []*model.Company
	for _, c := range f.items {
		out = append(out, c)
	}
	return out, nil
}

type fakeUserRepo struct {
	items map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	f.items[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakeUserRepo) Update(ctx context.Context, u *model.User) error {
	f.items[u.ID] = u
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, filters *model.UserFilters) ([]*model.User, error) {
	var out []*model.User
	for _, u := range f.items {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) ListNotStaffedAt(ctx context.Context, companyID uuid.UUID) ([]*model.User, error) {
	return nil, nil
}

type fakeOutboxRepo struct {
	events []*model.OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, e *model.OutboxEvent) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakeOutboxRepo) GetPendingEventsWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errorMessage *string, retryAt *time.Time) error {
	return nil
}

func (f *fakeOutboxRepo) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

type fakeAuditRepo struct{}

func (fakeAuditRepo) Create(ctx context.Context, log *model.AuditLog) error { return nil }
func (fakeAuditRepo) List(ctx context.Context, filters map[string]interface{}) ([]*model.AuditLog, error) {
	return nil, nil
}
func (fakeAuditRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type fakeEmailService struct {
	confirmed []string
	cancelled []string
}

func (f *fakeEmailService) SendAppointmentConfirmed(ctx context.Context, to, name, date, clock string) error {
	f.confirmed = append(f.confirmed, to)
	return nil
}

func (f *fakeEmailService) SendAppointmentCancelled(ctx context.Context, to, name, date, clock string) error {
	f.cancelled = append(f.cancelled, to)
	return nil
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, to, name string) error { return nil }

var _ repository.AppointmentRepository = (*fakeAppointmentRepo)(nil)
var _ repository.StaffRepository = (*fakeStaffRepo)(nil)
var _ repository.ServiceRepository = (*fakeServiceRepo)(nil)
var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)
var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.OutboxRepository = (*fakeOutboxRepo)(nil)
var _ repository.AuditRepository = fakeAuditRepo{}

type testEnv struct {
	svc          *Service
	appointments *fakeAppointmentRepo
	staff        *fakeStaffRepo
	services     *fakeServiceRepo
	companies    *fakeCompanyRepo
	users        *fakeUserRepo
	outbox       *fakeOutboxRepo
	email        *fakeEmailService

	companyID uuid.UUID
	serviceID uuid.UUID
	staffID   uuid.UUID
	ownerID   uuid.UUID
	userID    uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		appointments: newFakeAppointmentRepo(),
		staff:        newFakeStaffRepo(),
		services:     newFakeServiceRepo(),
		companies:    newFakeCompanyRepo(),
		users:        newFakeUserRepo(),
		outbox:       &fakeOutboxRepo{},
		email:        &fakeEmailService{},

		companyID: uuid.New(),
		serviceID: uuid.New(),
		staffID:   uuid.New(),
		ownerID:   uuid.New(),
		userID:    uuid.New(),
	}

	env.companies.items[env.companyID] = &model.Company{
		Base:        model.Base{ID: env.companyID},
		OwnerUserID: env.ownerID,
		Name:        "Shear Genius",
		Status:      model.CompanyStatusActive,
	}
	env.services.items[env.serviceID] = &model.Service{
		Base:      model.Base{ID: env.serviceID},
		CompanyID: env.companyID,
		Name:      "Haircut",
		Price:     35,
		Status:    model.ServiceStatusActive,
	}
	env.staff.items[env.staffID] = &model.Staff{
		Base:      model.Base{ID: env.staffID},
		UserID:    uuid.New(),
		CompanyID: env.companyID,
		Status:    model.StaffStatusActive,
	}
	env.users.items[env.userID] = &model.User{
		Base:  model.Base{ID: env.userID},
		Email: "customer@example.com",
		Name:  "Pat Customer",
		Role:  model.RoleUser,
	}

	env.svc = NewService(
		env.appointments,
		env.staff,
		env.services,
		env.companies,
		env.users,
		event.NewService(env.outbox),
		env.email,
		audit.NewService(fakeAuditRepo{}),
		testMetrics,
		logger.NewLogger(nil),
	)
	return env
}

func (env *testEnv) userClaims() *model.TokenClaims {
	return &model.TokenClaims{UserID: env.userID, Email: "customer@example.com", Role: model.RoleUser}
}

func (env *testEnv) ownerClaims() *model.TokenClaims {
	return &model.TokenClaims{UserID: env.ownerID, Email: "owner@example.com", Role: model.RoleOwner}
}

func (env *testEnv) createPending(t *testing.T, prefs []uuid.UUID) *model.Appointment {
	t.Helper()
	created, err := env.svc.Create(context.Background(), env.userClaims(), &model.CreateAppointmentRequest{
		CompanyID:        env.companyID,
		ServiceID:        env.serviceID,
		AppointmentDate:  "2026-10-01",
		AppointmentTime:  "10:00",
		StaffPreferences: prefs,
	})
	require.NoError(t, err)
	return created
}

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)

	created := env.createPending(t, []uuid.UUID{env.staffID})

	assert.Equal(t, model.AppointmentStatusPending, created.Status)
	assert.Equal(t, env.userID, created.UserID)
	assert.Nil(t, created.StaffID)
	assert.Len(t, env.outbox.events, 1)
	assert.Equal(t, model.EventAppointmentCreated, env.outbox.events[0].EventType)
}

func TestCreateAppointmentTooManyPreferences(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Create(context.Background(), env.userClaims(), &model.CreateAppointmentRequest{
		CompanyID:        env.companyID,
		ServiceID:        env.serviceID,
		AppointmentDate:  "2026-10-01",
		AppointmentTime:  "10:00",
		StaffPreferences: []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()},
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestCreateAppointmentInvalidDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Create(context.Background(), env.userClaims(), &model.CreateAppointmentRequest{
		CompanyID:       env.companyID,
		ServiceID:       env.serviceID,
		AppointmentDate: "2024-02-30",
		AppointmentTime: "10:00",
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestCreateAppointmentDropsStaffIDForUser(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.svc.Create(context.Background(), env.userClaims(), &model.CreateAppointmentRequest{
		CompanyID:       env.companyID,
		ServiceID:       env.serviceID,
		AppointmentDate: "2026-10-01",
		AppointmentTime: "10:00",
		StaffID:         &env.staffID,
	})

	require.NoError(t, err)
	assert.Nil(t, created.StaffID)
}

func TestCreateAppointmentOnBehalfRequiresManager(t *testing.T) {
	env := newTestEnv(t)
	other := uuid.New()

	_, err := env.svc.Create(context.Background(), env.userClaims(), &model.CreateAppointmentRequest{
		UserID:          &other,
		CompanyID:       env.companyID,
		ServiceID:       env.serviceID,
		AppointmentDate: "2026-10-01",
		AppointmentTime: "10:00",
	})
	assert.True(t, apperror.IsPermission(err))

	created, err := env.svc.Create(context.Background(), env.ownerClaims(), &model.CreateAppointmentRequest{
		UserID:          &other,
		CompanyID:       env.companyID,
		ServiceID:       env.serviceID,
		AppointmentDate: "2026-10-01",
		AppointmentTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, other, created.UserID)
}

func TestCreateAppointmentServiceCompanyMismatch(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Create(context.Background(), env.userClaims(), &model.CreateAppointmentRequest{
		CompanyID:       uuid.New(),
		ServiceID:       env.serviceID,
		AppointmentDate: "2026-10-01",
		AppointmentTime: "10:00",
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateStripsRestrictedFieldsForUser(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, nil)

	status := model.AppointmentStatusConfirmed
	notes := "please use side entrance"
	updated, err := env.svc.Update(context.Background(), env.userClaims(), created.ID, &model.UpdateAppointmentRequest{
		Notes:   &notes,
		Status:  &status,
		StaffID: &env.staffID,
	})

	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, model.AppointmentStatusPending, updated.Status)
	assert.Nil(t, updated.StaffID)
}

func TestUpdateOtherUsersAppointmentDenied(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, nil)

	stranger := &model.TokenClaims{UserID: uuid.New(), Role: model.RoleUser}
	notes := "hijack"
	_, err := env.svc.Update(context.Background(), stranger, created.ID, &model.UpdateAppointmentRequest{
		Notes: &notes,
	})

	assert.True(t, apperror.IsPermission(err))
}

func TestUpdateStatusRequiresStaffSelection(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, nil)

	_, err := env.svc.UpdateStatus(context.Background(), env.ownerClaims(), created.ID, &model.UpdateAppointmentStatusRequest{
		Status: model.AppointmentStatusConfirmed,
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "please select a staff member", appErr.Message)

	stored, getErr := env.appointments.Get(context.Background(), created.ID)
	require.NoError(t, getErr)
	assert.Equal(t, model.AppointmentStatusPending, stored.Status)
	assert.Nil(t, stored.StaffID)
}

func TestUpdateStatusConfirmBindsStaffAtomically(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, []uuid.UUID{env.staffID})

	updated, err := env.svc.UpdateStatus(context.Background(), env.ownerClaims(), created.ID, &model.UpdateAppointmentStatusRequest{
		Status:  model.AppointmentStatusConfirmed,
		StaffID: &env.staffID,
	})

	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, updated.Status)
	require.NotNil(t, updated.StaffID)
	assert.Equal(t, env.staffID, *updated.StaffID)

	// Status and staff binding land in a single write.
	assert.Equal(t, 1, env.appointments.updateStatusCalls)
	assert.Equal(t, 0, env.appointments.updateCalls)

	assert.Equal(t, []string{"customer@example.com"}, env.email.confirmed)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, nil)

	_, err := env.svc.UpdateStatus(context.Background(), env.ownerClaims(), created.ID, &model.UpdateAppointmentStatusRequest{
		Status: model.AppointmentStatusCompleted,
	})
	assert.True(t, apperror.IsValidation(err))

	_, err = env.svc.UpdateStatus(context.Background(), env.ownerClaims(), created.ID, &model.UpdateAppointmentStatusRequest{
		Status: model.AppointmentStatusCancelled,
	})
	require.NoError(t, err)

	_, err = env.svc.UpdateStatus(context.Background(), env.ownerClaims(), created.ID, &model.UpdateAppointmentStatusRequest{
		Status:  model.AppointmentStatusConfirmed,
		StaffID: &env.staffID,
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateStatusDeniedForUser(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, nil)

	_, err := env.svc.UpdateStatus(context.Background(), env.userClaims(), created.ID, &model.UpdateAppointmentStatusRequest{
		Status:  model.AppointmentStatusConfirmed,
		StaffID: &env.staffID,
	})

	assert.True(t, apperror.IsPermission(err))
}

func TestUpdateStatusRejectsForeignStaff(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, nil)

	foreign := uuid.New()
	env.staff.items[foreign] = &model.Staff{
		Base:      model.Base{ID: foreign},
		UserID:    uuid.New(),
		CompanyID: uuid.New(),
		Status:    model.StaffStatusActive,
	}

	_, err := env.svc.UpdateStatus(context.Background(), env.ownerClaims(), created.ID, &model.UpdateAppointmentStatusRequest{
		Status:  model.AppointmentStatusConfirmed,
		StaffID: &foreign,
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateStatusRejectsInactiveStaff(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, nil)

	env.staff.items[env.staffID].Status = model.StaffStatusSuspended

	_, err := env.svc.UpdateStatus(context.Background(), env.ownerClaims(), created.ID, &model.UpdateAppointmentStatusRequest{
		Status:  model.AppointmentStatusConfirmed,
		StaffID: &env.staffID,
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestAssignConfirms(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, nil)

	updated, err := env.svc.Assign(context.Background(), env.ownerClaims(), created.ID, &env.staffID)

	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, updated.Status)
	require.NotNil(t, updated.StaffID)
	assert.Equal(t, env.staffID, *updated.StaffID)
}

func TestListScopedByRole(t *testing.T) {
	env := newTestEnv(t)
	mine := env.createPending(t, nil)

	// A booking from a different user at the same company.
	otherUser := uuid.New()
	other, err := env.svc.Create(context.Background(), env.ownerClaims(), &model.CreateAppointmentRequest{
		UserID:          &otherUser,
		CompanyID:       env.companyID,
		ServiceID:       env.serviceID,
		AppointmentDate: "2026-10-02",
		AppointmentTime: "11:00",
	})
	require.NoError(t, err)

	got, err := env.svc.List(context.Background(), env.userClaims(), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)

	got, err = env.svc.List(context.Background(), env.ownerClaims(), nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	admin := &model.TokenClaims{UserID: uuid.New(), Role: model.RoleAdmin}
	got, err = env.svc.List(context.Background(), admin, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_ = other
}

func TestDeletePermissions(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, nil)

	stranger := &model.TokenClaims{UserID: uuid.New(), Role: model.RoleUser}
	err := env.svc.Delete(context.Background(), stranger, created.ID)
	assert.True(t, apperror.IsPermission(err))

	err = env.svc.Delete(context.Background(), env.userClaims(), created.ID)
	require.NoError(t, err)

	_, err = env.appointments.Get(context.Background(), created.ID)
	assert.Error(t, err)
}

func TestResolveRoster(t *testing.T) {
	env := newTestEnv(t)
	created := env.createPending(t, []uuid.UUID{env.staffID, uuid.New()})

	appt, res, suggested, err := env.svc.ResolveRoster(context.Background(), env.ownerClaims(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, appt.ID)
	require.Len(t, res.Preferred, 1)
	assert.Equal(t, env.staffID, res.Preferred[0].ID)
	require.NotNil(t, suggested)
	assert.Equal(t, env.staffID, suggested.ID)

	start, err := appt.StartTime()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01 10:00", start.Format("2006-01-02 15:04"))
}

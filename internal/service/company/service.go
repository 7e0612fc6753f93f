package company

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/repository"
	"github.com/salonhub/booking-api/internal/service/audit"
	"github.com/salonhub/booking-api/pkg/apperror"
)

type Service struct {
	companies repository.CompanyRepository
	auditor   *audit.Service
}

func NewService(companies repository.CompanyRepository, auditor *audit.Service) *Service {
	return &Service{companies: companies, auditor: auditor}
}

// Create registers a company in pending status, owned by the acting user.
// Owners may run several companies but not two with the same name.
func (s *Service) Create(ctx context.Context, actor *model.TokenClaims, req *model.CreateCompanyRequest) (*model.Company, error) {
	if !actor.Role.IsOwner() && !actor.Role.IsAdmin() {
		return nil, apperror.Permission("only owners can create companies")
	}

	exists, err := s.companies.ExistsNameForOwner(ctx, actor.UserID, req.Name)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("company with this name already exists")
	}

	company := &model.Company{
		Base:        model.Base{ID: uuid.New()},
		OwnerUserID: actor.UserID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Status:      model.CompanyStatusPending,
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, apperror.Internal(err)
	}

	s.auditor.Log(ctx, actor.UserID, company.ID, "create", "company", company.ID, &audit.LogOptions{
		Changes: company,
	})

	return company, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.companies.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("company", err)
	}
	return company, nil
}

// List returns every company for admins and the actor's own companies for
// owners.
func (s *Service) List(ctx context.Context, actor *model.TokenClaims) ([]*model.Company, error) {
	if actor.Role.IsAdmin() {
		companies, err := s.companies.List(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return companies, nil
	}

	companies, err := s.companies.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return companies, nil
}

func (s *Service) Update(ctx context.Context, actor *model.TokenClaims, id uuid.UUID, req *model.UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.companies.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("company", err)
	}

	if !actor.Role.IsAdmin() && company.OwnerUserID != actor.UserID {
		return nil, apperror.Permission("not allowed to modify this company")
	}

	if req.Name != nil && *req.Name != company.Name {
		exists, err := s.companies.ExistsNameForOwner(ctx, company.OwnerUserID, *req.Name)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if exists {
			return nil, apperror.Conflict("company with this name already exists")
		}
		company.Name = *req.Name
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Category != nil {
		company.Category = req.Category
	}
	if req.Subcategory != nil {
		company.Subcategory = req.Subcategory
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, apperror.Internal(err)
	}

	s.auditor.Log(ctx, actor.UserID, company.ID, "update", "company", company.ID, &audit.LogOptions{
		Changes: req,
	})

	return company, nil
}

// UpdateStatus moves a company out of pending. Admin only.
func (s *Service) UpdateStatus(ctx context.Context, actor *model.TokenClaims, id uuid.UUID, status model.CompanyStatus) error {
	if !actor.Role.IsAdmin() {
		return apperror.Permission("only admins can change company status")
	}
	if !status.Valid() || status == model.CompanyStatusPending {
		return apperror.Validationf("invalid company status: %s", status)
	}

	if err := s.companies.UpdateStatus(ctx, id, status); err != nil {
		return apperror.NotFound("company", err)
	}

	s.auditor.Log(ctx, actor.UserID, id, "update_status", "company", id, &audit.LogOptions{
		Metadata: map[string]interface{}{"status": status},
	})

	return nil
}

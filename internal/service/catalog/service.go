package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/model"
	"github.com/salonhub/booking-api/internal/repository"
	"github.com/salonhub/booking-api/internal/service/audit"
	"github.com/salonhub/booking-api/pkg/apperror"
)

type Service struct {
	services  repository.ServiceRepository
	companies repository.CompanyRepository
	auditor   *audit.Service
}

func NewService(services repository.ServiceRepository, companies repository.CompanyRepository, auditor *audit.Service) *Service {
	return &Service{services: services, companies: companies, auditor: auditor}
}

func (s *Service) canManageCompany(ctx context.Context, actor *model.TokenClaims, companyID uuid.UUID) error {
	if actor.Role.IsAdmin() {
		return nil
	}
	if !actor.Role.IsOwner() {
		return apperror.Permission("not allowed to manage services")
	}
	company, err := s.companies.Get(ctx, companyID)
	if err != nil {
		return apperror.NotFound("company", err)
	}
	if company.OwnerUserID != actor.UserID {
		return apperror.Permission("not allowed to manage services for this company")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, actor *model.TokenClaims, req *model.CreateServiceRequest) (*model.Service, error) {
	if err := s.canManageCompany(ctx, actor, req.CompanyID); err != nil {
		return nil, err
	}

	service := &model.Service{
		Base:        model.Base{ID: uuid.New()},
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Status:      model.ServiceStatusActive,
	}

	if err := s.services.Create(ctx, service); err != nil {
		return nil, apperror.Internal(err)
	}

	s.auditor.Log(ctx, actor.UserID, service.CompanyID, "create", "service", service.ID, &audit.LogOptions{
		Changes: service,
	})

	return service, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	service, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("service", err)
	}
	return service, nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Service, error) {
	services, err := s.services.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return services, nil
}

func (s *Service) Update(ctx context.Context, actor *model.TokenClaims, id uuid.UUID, req *model.UpdateServiceRequest) (*model.Service, error) {
	service, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("service", err)
	}

	if err := s.canManageCompany(ctx, actor, service.CompanyID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, apperror.Validation("price must be positive")
		}
		service.Price = *req.Price
	}
	if req.Status != nil {
		service.Status = *req.Status
	}

	if err := s.services.Update(ctx, service); err != nil {
		return nil, apperror.Internal(err)
	}

	s.auditor.Log(ctx, actor.UserID, service.CompanyID, "update", "service", service.ID, &audit.LogOptions{
		Changes: req,
	})

	return service, nil
}

func (s *Service) Delete(ctx context.Context, actor *model.TokenClaims, id uuid.UUID) error {
	service, err := s.services.Get(ctx, id)
	if err != nil {
		return apperror.NotFound("service", err)
	}

	if err := s.canManageCompany(ctx, actor, service.CompanyID); err != nil {
		return err
	}

	if err := s.services.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}

	s.auditor.Log(ctx, actor.UserID, service.CompanyID, "delete", "service", id, nil)

	return nil
}

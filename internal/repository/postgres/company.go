package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/model"
)

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	query := `
		INSERT INTO companies (
			id, owner_user_id, name, email, phone, address,
			category, subcategory, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		company.ID,
		company.OwnerUserID,
		company.Name,
		company.Email,
		company.Phone,
		company.Address,
		company.Category,
		company.Subcategory,
		company.Status,
		company.CreatedAt,
		company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *companyRepository) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	query := `
		SELECT id, owner_user_id, name, email, phone, address,
			   category, subcategory, status, created_at, updated_at
		FROM companies
		WHERE id = $1
	`
	var company model.Company
	if err := r.db.GetContext(ctx, &company, query, id); err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) ListByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*model.Company, error) {
	query := `
		SELECT id, owner_user_id, name, email, phone, address,
			   category, subcategory, status, created_at, updated_at
		FROM companies
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`
	var companies []*model.Company
	if err := r.db.SelectContext(ctx, &companies, query, ownerUserID); err != nil {
		return nil, fmt.Errorf("failed to list companies by owner: %w", err)
	}
	return companies, nil
}

func (r *companyRepository) ExistsNameForOwner(ctx context.Context, ownerUserID uuid.UUID, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM companies
			WHERE owner_user_id = $1 AND lower(name) = lower($2)
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, ownerUserID, name); err != nil {
		return false, fmt.Errorf("failed to check company name: %w", err)
	}
	return exists, nil
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) error {
	query := `
		UPDATE companies
		SET name = $1, email = $2, phone = $3, address = $4,
			category = $5, subcategory = $6, updated_at = $7
		WHERE id = $8
	`
	company.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		company.Name,
		company.Email,
		company.Phone,
		company.Address,
		company.Category,
		company.Subcategory,
		company.UpdatedAt,
		company.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("company not found")
	}
	return nil
}

func (r *companyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CompanyStatus) error {
	query := `
		UPDATE companies
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update company status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("company not found")
	}
	return nil
}

func (r *companyRepository) List(ctx context.Context) ([]*model.Company, error) {
	query := `
		SELECT id, owner_user_id, name, email, phone, address,
			   category, subcategory, status, created_at, updated_at
		FROM companies
		ORDER BY created_at DESC
	`
	var companies []*model.Company
	if err := r.db.SelectContext(ctx, &companies, query); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

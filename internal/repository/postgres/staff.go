package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/model"
)

func (r *staffRepository) Create(ctx context.Context, staff *model.Staff) error {
	query := `
		INSERT INTO staff (
			id, user_id, company_id, working_hours_start, working_hours_end,
			skills, professional_qualifications, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		staff.ID,
		staff.UserID,
		staff.CompanyID,
		staff.WorkingHoursStart,
		staff.WorkingHoursEnd,
		staff.Skills,
		staff.ProfessionalQualifications,
		staff.Status,
		staff.CreatedAt,
		staff.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

func (r *staffRepository) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	query := `
		SELECT id, user_id, company_id, working_hours_start, working_hours_end,
			   skills, professional_qualifications, status, created_at, updated_at
		FROM staff
		WHERE id = $1
	`
	var staff model.Staff
	if err := r.db.GetContext(ctx, &staff, query, id); err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return &staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *model.Staff) error {
	query := `
		UPDATE staff
		SET working_hours_start = $1, working_hours_end = $2, skills = $3,
			professional_qualifications = $4, status = $5, updated_at = $6
		WHERE id = $7
	`
	staff.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		staff.WorkingHoursStart,
		staff.WorkingHoursEnd,
		staff.Skills,
		staff.ProfessionalQualifications,
		staff.Status,
		staff.UpdatedAt,
		staff.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("staff not found")
	}
	return nil
}

// Delete removes the staff row and nullifies staff_id on appointments that
// reference it. Preference lists keep the dangling id; the resolver
// tolerates stale references.
func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE appointments SET staff_id = NULL, updated_at = $1 WHERE staff_id = $2`,
		time.Now(), id,
	); err != nil {
		return fmt.Errorf("failed to clear staff assignments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("staff not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *staffRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Staff, error) {
	query := `
		SELECT id, user_id, company_id, working_hours_start, working_hours_end,
			   skills, professional_qualifications, status, created_at, updated_at
		FROM staff
		WHERE company_id = $1
		ORDER BY created_at ASC
	`
	var staff []*model.Staff
	if err := r.db.SelectContext(ctx, &staff, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (r *staffRepository) ExistsForUserAtCompany(ctx context.Context, userID, companyID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM staff
			WHERE user_id = $1 AND company_id = $2
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, companyID); err != nil {
		return false, fmt.Errorf("failed to check staffing: %w", err)
	}
	return exists, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/model"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, user_id, company_id, service_id, staff_id, staff_preferences,
			appointment_date, appointment_time, status, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.UserID,
		appointment.CompanyID,
		appointment.ServiceID,
		appointment.StaffID,
		appointment.StaffPreferences,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.Status,
		appointment.Notes,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, user_id, company_id, service_id, staff_id, staff_preferences,
			   appointment_date, appointment_time, status, notes,
			   created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// Update writes the mutable fields. company_id and service_id are immutable
// after creation and deliberately absent from the statement.
func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET staff_id = $1, staff_preferences = $2, appointment_date = $3,
			appointment_time = $4, status = $5, notes = $6, updated_at = $7
		WHERE id = $8
	`
	appointment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.StaffID,
		appointment.StaffPreferences,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.Status,
		appointment.Notes,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("appointment not found")
	}
	return nil
}

// UpdateStatus sets status and staff assignment in one statement, so a
// confirmation with staff binding is a single observable transition.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus, staffID *uuid.UUID) error {
	query := `
		UPDATE appointments
		SET status = $1,
			staff_id = COALESCE($2, staff_id),
			updated_at = $3
		WHERE id = $4
	`
	result, err := r.db.ExecContext(ctx, query, status, staffID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("appointment not found")
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("appointment not found")
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query := `
		SELECT id, user_id, company_id, service_id, staff_id, staff_preferences,
			   appointment_date, appointment_time, status, notes,
			   created_at, updated_at
		FROM appointments
		WHERE 1=1
	`
	args := []interface{}{}
	argCount := 1

	if filters != nil {
		if filters.CompanyID != uuid.Nil {
			query += fmt.Sprintf(" AND company_id = $%d", argCount)
			args = append(args, filters.CompanyID)
			argCount++
		}
		if filters.UserID != uuid.Nil {
			query += fmt.Sprintf(" AND user_id = $%d", argCount)
			args = append(args, filters.UserID)
			argCount++
		}
		if filters.StaffID != uuid.Nil {
			query += fmt.Sprintf(" AND staff_id = $%d", argCount)
			args = append(args, filters.StaffID)
			argCount++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND status = $%d", argCount)
			args = append(args, filters.Status)
			argCount++
		}
		if filters.FromDate != "" {
			query += fmt.Sprintf(" AND appointment_date >= $%d", argCount)
			args = append(args, filters.FromDate)
			argCount++
		}
		if filters.ToDate != "" {
			query += fmt.Sprintf(" AND appointment_date <= $%d", argCount)
			args = append(args, filters.ToDate)
			argCount++
		}
	}

	query += " ORDER BY appointment_date ASC, appointment_time ASC"

	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

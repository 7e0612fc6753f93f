package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCompleted, AppointmentStatusConfirmed, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatusSameStatusIsNoop(t *testing.T) {
	for _, s := range []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	} {
		assert.True(t, s.CanTransitionTo(s), "same-status write must be allowed for %s", s)
	}
}

func TestAppointmentStatusTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusPending.Terminal())
	assert.False(t, AppointmentStatusConfirmed.Terminal())
	assert.True(t, AppointmentStatusCompleted.Terminal())
	assert.True(t, AppointmentStatusCancelled.Terminal())
}

func TestParseAppointmentDateTime(t *testing.T) {
	got, err := ParseAppointmentDateTime("2024-03-15", "14:30")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, 14, got.Hour())

	// Calendar validity, not just format
	_, err = ParseAppointmentDateTime("2024-02-30", "10:00")
	assert.Error(t, err)

	_, err = ParseAppointmentDateTime("2024-13-01", "10:00")
	assert.Error(t, err)

	_, err = ParseAppointmentDateTime("2024-03-15", "25:00")
	assert.Error(t, err)

	_, err = ParseAppointmentDateTime("15-03-2024", "10:00")
	assert.Error(t, err)

	// Leap day is valid
	_, err = ParseAppointmentDateTime("2024-02-29", "10:00")
	assert.NoError(t, err)
}

func TestAppointmentStartTimeAndSlot(t *testing.T) {
	a := &Appointment{
		AppointmentDate: "2026-10-01",
		AppointmentTime: "10:00",
	}

	start, err := a.StartTime()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01 10:00", start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2026-10-01 11:00", start.Add(DisplayDuration).Format("2006-01-02 15:04"))

	a.AppointmentDate = "2026-02-30"
	_, err = a.StartTime()
	assert.Error(t, err)
}

func TestUpdateAppointmentRequestRestrictedFields(t *testing.T) {
	status := AppointmentStatusConfirmed
	notes := "bring photos"
	req := &UpdateAppointmentRequest{
		Notes:  &notes,
		Status: &status,
	}

	assert.True(t, req.HasRestrictedFields())

	req.StripRestrictedFields()
	assert.False(t, req.HasRestrictedFields())
	assert.Nil(t, req.Status)
	assert.Nil(t, req.StaffID)
	assert.Nil(t, req.StaffPreferences)
	require.NotNil(t, req.Notes)
	assert.Equal(t, notes, *req.Notes)
}

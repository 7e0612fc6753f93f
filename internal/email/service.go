package email

import (
	"context"
)

// Service sends customer-facing booking notifications. All sends are
// best-effort: callers log failures and never fail the mutation.
type Service interface {
	SendAppointmentConfirmed(ctx context.Context, to, name, date, clock string) error
	SendAppointmentCancelled(ctx context.Context, to, name, date, clock string) error
	SendWelcome(ctx context.Context, to, name string) error
}

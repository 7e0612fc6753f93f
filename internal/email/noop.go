package email

import "context"

type noopService struct{}

// NewNoopService is used when SMTP is not configured.
func NewNoopService() Service {
	return noopService{}
}

func (noopService) SendAppointmentConfirmed(ctx context.Context, to, name, date, clock string) error {
	return nil
}

func (noopService) SendAppointmentCancelled(ctx context.Context, to, name, date, clock string) error {
	return nil
}

func (noopService) SendWelcome(ctx context.Context, to, name string) error {
	return nil
}

package notification

import (
	"context"

	"leavehub/internal/mailer"

	"github.com/rs/zerolog"
)

// Service renders lifecycle emails and hands them to the mailer.
type Service struct {
	mailer mailer.Mailer
	log    zerolog.Logger
}

func NewService(m mailer.Mailer, log zerolog.Logger) *Service {
	return &Service{mailer: m, log: log.With().Str("component", "notification_service").Logger()}
}

// Notify sends the employee-facing email for one lifecycle event.
func (s *Service) Notify(ctx context.Context, evt EventType, e LeaveEvent) error {
	s.log.Info().Str("event", string(evt)).Str("employee", e.EmployeeName).Msg("sending leave notification")

	body, err := Render(evt, e)
	if err != nil {
		s.log.Error().Err(err).Msg("leave notification render failed")
		return err
	}

	if err := s.mailer.Send(ctx, e.EmployeeEmail, Subject(evt), body); err != nil {
		s.log.Error().Err(err).Str("to", e.EmployeeEmail).Msg("leave notification send failed")
		return err
	}

	s.log.Info().Str("event", string(evt)).Msg("leave notification sent")
	return nil
}

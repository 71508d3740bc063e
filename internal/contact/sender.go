package contact

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SimulatedSender stands in for a mail backend: it waits Delay and reports
// success. It never fails unless the context is cancelled first.
type SimulatedSender struct {
	Delay  time.Duration
	Logger *zap.Logger
}

func NewSimulatedSender(delay time.Duration, logger *zap.Logger) *SimulatedSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedSender{Delay: delay, Logger: logger}
}

func (s *SimulatedSender) Send(ctx context.Context, msg Message) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	s.Logger.Info("Contact message accepted",
		zap.String("id", msg.ID),
		zap.String("email", msg.Email),
		zap.Int("length", len(msg.Body)))
	return nil
}

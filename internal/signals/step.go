package signals

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Step is one caller-declared follow-up action run with the result frame
// after a successful redemption.
type Step interface {
	Run(ctx context.Context, frame *Frame) error
}

// Publisher is the subset of a NATS connection used by notification steps.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NotificationStep publishes a success notice that references one value from
// the frame, e.g. the confirmation id from the "checkout" frame.
type NotificationStep struct {
	pub     Publisher
	subject string
	key     string
	text    string
	logger  *zap.Logger
}

func NewNotificationStep(pub Publisher, subject, key, text string, logger *zap.Logger) *NotificationStep {
	return &NotificationStep{
		pub:     pub,
		subject: subject,
		key:     key,
		text:    text,
		logger:  logger,
	}
}

func (s *NotificationStep) Run(ctx context.Context, frame *Frame) error {
	value, ok := frame.Get(s.key)
	if !ok {
		return fmt.Errorf("frame %q has no value for %q", frame.Name(), s.key)
	}

	payload, err := json.Marshal(map[string]string{
		"text": s.text,
		s.key:  value,
	})
	if err != nil {
		return err
	}

	if err := s.pub.Publish(s.subject, payload); err != nil {
		return err
	}

	s.logger.Info("Notification step ran",
		zap.String("frame", frame.Name()),
		zap.String("subject", s.subject),
	)
	return nil
}

// DefaultSuccessSteps is the follow-up sequence used when the caller does not
// declare one: a single notification referencing the redemption confirmation.
// Passed explicitly at construction, not read from ambient state.
func DefaultSuccessSteps(pub Publisher, logger *zap.Logger) []Step {
	return []Step{
		NewNotificationStep(pub, "checkout.notifications", "confirmation", "Payment received", logger),
	}
}

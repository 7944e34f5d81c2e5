package telemetry

import (
	"context"
	"time"

	"github.com/heystay/booking-api/thirdparty/rabbitmq"
	"github.com/heystay/booking-api/utils/logger"
	"go.uber.org/zap"
)

// Sink receives every unexpected failure before a generic 500 goes out.
// Capture must never fail the request it is reporting on.
type Sink interface {
	CaptureException(ctx context.Context, err error)
}

type noopSink struct{}

// NewNoopSink returns a sink that drops every event. Used when no telemetry
// transport is configured.
func NewNoopSink() Sink {
	return noopSink{}
}

func (noopSink) CaptureException(context.Context, error) {}

type amqpSink struct {
	publisher *rabbitmq.Publisher
	service   string
}

// NewAMQPSink forwards captured failures to the telemetry queue.
func NewAMQPSink(publisher *rabbitmq.Publisher, service string) Sink {
	return &amqpSink{
		publisher: publisher,
		service:   service,
	}
}

func (s *amqpSink) CaptureException(_ context.Context, err error) {
	publishErr := s.publisher.PublishErrorEvent(rabbitmq.ErrorEventMessage{
		Service:    s.service,
		Message:    err.Error(),
		OccurredAt: time.Now(),
	})
	if publishErr != nil {
		logger.Warn("telemetry publish failed", zap.String("error", publishErr.Error()))
	}
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Subjects published by the API
const (
	SubjectApplicationCreated       = "jobboard.application.created"
	SubjectApplicationStatusChanged = "jobboard.application.status_changed"
	SubjectMessageCreated           = "jobboard.message.created"
	SubjectOpportunityCreated       = "jobboard.opportunity.created"
	SubjectOpportunityStatusChanged = "jobboard.opportunity.status_changed"
)

// Envelope wraps every published payload
type Envelope struct {
	Subject    string      `json:"subject"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// Publisher emits domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
	Close()
}

type natsPublisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

// NewNATSPublisher connects to NATS and returns a Publisher
func NewNATSPublisher(url string, timeout time.Duration, logger zerolog.Logger) (Publisher, error) {
	opts := []nats.Option{
		nats.Name("findjobsyria-api"),
		nats.Timeout(timeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return &natsPublisher{conn: conn, logger: logger}, nil
}

func (p *natsPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(Envelope{Subject: subject, OccurredAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		return fmt.Errorf("marshaling event %s: %w", subject, err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("Failed to publish event")
		return fmt.Errorf("publishing to NATS: %w", err)
	}

	p.logger.Debug().Str("subject", subject).Int("size", len(data)).Msg("Published event")
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		_ = p.conn.Drain()
	}
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that drops every event
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (noopPublisher) Close() {}

// Package events publishes ledger events to Google Pub/Sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"github.com/heartmarshall/incentive-ledger/internal/config"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// Publisher sends settlement events to one topic.
type Publisher struct {
	log    *slog.Logger
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewPublisher connects to the configured project and topic.
func NewPublisher(ctx context.Context, logger *slog.Logger, cfg config.EventsConfig, opts ...option.ClientOption) (*Publisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("pubsub client: %w", err)
	}
	return &Publisher{
		log:    logger.With("adapter", "events"),
		client: client,
		topic:  client.Topic(cfg.Topic),
	}, nil
}

// PublishSettlement sends ev and waits for the server to accept it.
func (p *Publisher) PublishSettlement(ctx context.Context, ev domain.SettlementEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	res := p.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"type":    ev.Type,
			"source":  ev.Source,
			"company": ev.Company,
		},
	})
	id, err := res.Get(ctx)
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("message_id", id),
		slog.String("plan_id", ev.PlanID.String()))
	return nil
}

// Close flushes pending messages and closes the client.
func (p *Publisher) Close() error {
	p.topic.Stop()
	return p.client.Close()
}

// Noop drops events. It is used when publishing is not configured.
type Noop struct{}

func (Noop) PublishSettlement(context.Context, domain.SettlementEvent) error { return nil }

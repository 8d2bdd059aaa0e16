// Package eventq publishes registry lifecycle events for downstream catalog
// indexing. Consumers are out of scope; the queue is fire-and-forget from the
// registry's point of view.
package eventq

import (
	"context"
	"time"
)

const (
	EvMonographRegistered = "monograph_registered"
	EvMonographStored     = "monograph_stored"
)

type Event struct {
	Type        string    `json:"type"`
	MonographID string    `json:"monographId"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// NoopPublisher is used when no queue is configured, e.g. local development.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, ev Event) error {
	return nil
}

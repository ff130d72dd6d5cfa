package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/rs/zerolog/log"
)

// EventPayload describes a lifecycle change on a stored document.
type EventPayload struct {
	Recurso string `json:"recurso"` // usuario or grupo
	Accion  string `json:"accion"`  // crear, actualizar, eliminar, agregar-integrante
	ID      string `json:"id"`
}

// Notifier publishes lifecycle events. Publishing is best-effort: callers log
// a failed Notify and carry on, it never changes an HTTP response.
type Notifier interface {
	Notify(payload EventPayload) error
	Close()
}

type EventPublisher struct {
	client   pulsar.Client
	producer pulsar.Producer
}

// NewEventPublisher initializes the Pulsar client and producer.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	return &EventPublisher{client: client, producer: producer}, nil
}

// Notify publishes an event to Pulsar.
func (p *EventPublisher) Notify(payload EventPayload) error {
	message, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not serialize event payload: %w", err)
	}

	_, err = p.producer.Send(context.Background(), &pulsar.ProducerMessage{
		Payload: message,
	})
	if err != nil {
		return fmt.Errorf("could not send event to Pulsar: %w", err)
	}

	log.Debug().Str("recurso", payload.Recurso).Str("accion", payload.Accion).
		Msg("event sent to Pulsar")
	return nil
}

// Close cleans up the Pulsar producer and client.
func (p *EventPublisher) Close() {
	p.producer.Close()
	p.client.Close()
}

// NoopNotifier is used when no Pulsar URL is configured.
type NoopNotifier struct{}

func (n *NoopNotifier) Notify(payload EventPayload) error { return nil }

func (n *NoopNotifier) Close() {}

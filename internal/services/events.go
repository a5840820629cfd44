package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Customer lifecycle routing keys.
const (
	EventCustomerCreated = "customer.created"
	EventCustomerUpdated = "customer.updated"
	EventCustomerDeleted = "customer.deleted"
)

// EventPublisher publishes JSON events to a message broker.
type EventPublisher interface {
	PublishJSON(routingKey string, payload interface{}) error
}

// CustomerEvent is the payload published after a customer mutation.
type CustomerEvent struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	CustomerID string    `json:"customerId"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// publish sends the event when a publisher is configured. Failures are logged only.
func publish(p EventPublisher, eventType, customerID, name string) {
	if p == nil {
		return
	}
	event := CustomerEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		CustomerID: customerID,
		Name:       name,
		OccurredAt: time.Now().UTC(),
	}
	if err := p.PublishJSON(eventType, event); err != nil {
		log.Printf("Warning: Failed to publish %s event for customer %s: %v", eventType, customerID, err)
	}
}

// HandleCustomerEvent decodes a delivered customer event and logs it.
func HandleCustomerEvent(body []byte) error {
	var event CustomerEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode customer event: %w", err)
	}
	if event.CustomerID == "" {
		return fmt.Errorf("customer event %s has no customer ID", event.EventID)
	}
	log.Printf("Received %s event for customer %s (event %s)", event.Type, event.CustomerID, event.EventID)
	return nil
}

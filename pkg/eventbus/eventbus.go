// Package eventbus is the in-process message bus shared by the modules.
package eventbus

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Metadata keys set on every event.
const (
	MetadataGameID = "game_id"
	MetadataTopic  = "topic"
)

// EventBus publishes and subscribes to topics.
type EventBus interface {
	message.Publisher
	message.Subscriber
}

// NewInProcessEventBus returns a bus backed by Go channels. Messages never
// leave the process.
func NewInProcessEventBus(logger *slog.Logger, buffer int64) EventBus {
	return gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: buffer,
		},
		watermill.NewSlogLogger(logger),
	)
}

// NewEventMessage marshals payload into a message scoped to one game. The
// correlation id, when present, is carried over so a request can be followed
// across handlers.
func NewEventMessage(topic, gameID, correlationID string, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(MetadataTopic, topic)
	if gameID != "" {
		msg.Metadata.Set(MetadataGameID, gameID)
	}
	if correlationID == "" {
		correlationID = watermill.NewUUID()
	}
	middleware.SetCorrelationID(correlationID, msg)
	return msg, nil
}

// PublishEvent builds an event message and publishes it to topic.
func PublishEvent(bus message.Publisher, topic, gameID, correlationID string, payload any) error {
	msg, err := NewEventMessage(topic, gameID, correlationID, payload)
	if err != nil {
		return err
	}
	return bus.Publish(topic, msg)
}

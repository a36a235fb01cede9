package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// PayloadHandler receives one decoded data payload.
type PayloadHandler func(data map[string]string)

// RedisPushListener relays data payloads published on a user's channel to a
// [PayloadHandler].
type RedisPushListener struct {
	client  *redis.Client
	channel string
	handler PayloadHandler
	logger  *logger.Logger
}

func NewRedisPushListener(client *redis.Client, channel string, handler PayloadHandler, logger *logger.Logger) (*RedisPushListener, error) {
	if strings.TrimSpace(channel) == "" {
		return nil, ErrEmptyChannel
	}
	return &RedisPushListener{client: client, channel: channel, handler: handler, logger: logger}, nil
}

// Run subscribes and blocks until ctx is done.
func (l *RedisPushListener) Run(ctx context.Context) error {
	sub := l.client.Subscribe(ctx, l.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", l.channel, err)
	}
	l.logger.Info().Str("channel", l.channel).Msg("listening for subscription updates")

	l.consume(ctx, sub.Channel())
	return nil
}

func (l *RedisPushListener) consume(ctx context.Context, messages <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			data, err := DecodeEnvelope(msg.Payload)
			if err != nil {
				l.logger.Err(err).
					Str("func", "*RedisPushListener.consume").
					Str("channel", msg.Channel).
					Msg("dropping push envelope")
				continue
			}
			l.handler(data)
		}
	}
}

// DecodeEnvelope parses a relayed payload into its data map.
func DecodeEnvelope(raw string) (map[string]string, error) {
	var data map[string]string
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	if data == nil {
		return nil, ErrInvalidEnvelope
	}
	return data, nil
}

package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/redis/go-redis/v9"
)

// Publisher is the part of *redis.Client used by [RedisNotifier].
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisNotifier publishes the data payload to a per-user channel.
type RedisNotifier struct {
	publisher Publisher
	prefix    string
	logger    *logger.Logger
}

func NewRedisNotifier(publisher Publisher, prefix string, logger *logger.Logger) *RedisNotifier {
	return &RedisNotifier{publisher: publisher, prefix: prefix, logger: logger}
}

// NewRedisClient parses url and returns a client for it.
func NewRedisClient(url string) (*redis.Client, error) {
	if url == "" {
		return nil, ErrEmptyRedisURL
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}
	return redis.NewClient(opts), nil
}

// ChannelFor names the relay channel of userID.
func ChannelFor(prefix, userID string) string {
	return prefix + userID
}

func (n *RedisNotifier) Notify(ctx context.Context, userID string, list models.SubscriptionStatusList) error {
	data, err := EncodeStatusPayload(list)
	if err != nil {
		return err
	}
	envelope, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal push envelope: %w", err)
	}

	channel := ChannelFor(n.prefix, userID)
	receivers, err := n.publisher.Publish(ctx, channel, string(envelope)).Result()
	if err != nil {
		return fmt.Errorf("%w: publish to %s: %w", ErrDeliveryFailed, channel, err)
	}

	n.logger.Debug().
		Str("channel", channel).
		Int64("receivers", receivers).
		Msg("published subscription update")
	return nil
}

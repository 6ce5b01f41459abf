package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

// redisClient is the subset of *redis.Client the publisher needs.
type redisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

// RedisPublisher publishes approval events as JSON on a Redis channel.
// Billing and reporting subscribe to the channel.
type RedisPublisher struct {
	client  redisClient
	channel string
}

var _ ports.ApprovalEventPublisher = (*RedisPublisher)(nil)

// NewRedisPublisher connects to Redis and checks the connection.
func NewRedisPublisher(ctx context.Context, addr, password string, db int, channel string) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return &RedisPublisher{client: client, channel: channel}, nil
}

// Publish marshals event and publishes it on the configured channel.
func (p *RedisPublisher) Publish(ctx context.Context, event domain.ApprovalEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal approval event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", p.channel, err)
	}
	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Package redis fans tick-committed notifications out across worldserver
// replicas so each instance's WebSocket hub can relay telemetry to its own
// subscribers without sharing process memory.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher publishes tick-committed notifications on a per-world channel.
type Publisher struct {
	rdb *redis.Client
}

// NewPublisher wraps an existing redis client.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// TickNotification is the payload published to a world's channel; replicas
// subscribed to it relay a ws.Event to their own local connections instead
// of re-deriving it from the database.
type TickNotification struct {
	WorldID string `json:"worldId"`
	Tick    int    `json:"tick"`
}

func channelName(worldID string) string {
	return "dominion:world:" + worldID + ":tick"
}

// PublishTickCommitted notifies other replicas that a tick has committed.
func (p *Publisher) PublishTickCommitted(ctx context.Context, worldID string, tick int) error {
	payload, err := json.Marshal(TickNotification{WorldID: worldID, Tick: tick})
	if err != nil {
		return fmt.Errorf("marshal tick notification: %w", err)
	}
	if err := p.rdb.Publish(ctx, channelName(worldID), payload).Err(); err != nil {
		return fmt.Errorf("publish tick notification: %w", err)
	}
	return nil
}

// Subscribe listens for tick-committed notifications on a world's channel
// until ctx is canceled, invoking onTick for each one received.
func (p *Publisher) Subscribe(ctx context.Context, worldID string, onTick func(TickNotification)) error {
	sub := p.rdb.Subscribe(ctx, channelName(worldID))
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var n TickNotification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				continue
			}
			onTick(n)
		}
	}
}

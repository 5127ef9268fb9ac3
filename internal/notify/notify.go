// Package notify delivers fire-and-forget user notifications over Redis
// pub/sub. Delivery failures are logged, never propagated: a match must
// succeed even when nobody is listening.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Notification is one event pushed to a user's channel.
type Notification struct {
	Type      string `json:"type"` // "new_match", "new_like"
	Title     string `json:"title,omitempty"`
	Message   string `json:"message"`
	FromID    uint64 `json:"from_id,omitempty"`
	ActionURL string `json:"action_url,omitempty"`
}

// Notifier delivers notifications. Implementations must be non-blocking from
// the caller's perspective and must not return errors.
type Notifier interface {
	Notify(ctx context.Context, userID uint64, n Notification)
}

// RedisNotifier publishes notifications to per-user Redis channels.
type RedisNotifier struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedisNotifier(client *redis.Client, log *slog.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, log: log}
}

// ChannelFor returns the pub/sub channel for a user.
func ChannelFor(userID uint64) string {
	return fmt.Sprintf("notify:user:%d", userID)
}

func (r *RedisNotifier) Notify(ctx context.Context, userID uint64, n Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		r.log.Error("failed to encode notification", "user", userID, "err", err)
		return
	}
	if err := r.client.Publish(ctx, ChannelFor(userID), payload).Err(); err != nil {
		r.log.Warn("notification publish failed", "user", userID, "type", n.Type, "err", err)
	}
}

// LogNotifier is the fallback when Redis is unavailable; it only logs.
type LogNotifier struct {
	Log *slog.Logger
}

func (l LogNotifier) Notify(_ context.Context, userID uint64, n Notification) {
	l.Log.Info("notification", "user", userID, "type", n.Type, "message", n.Message)
}

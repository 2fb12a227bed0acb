package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Alerter delivers an outbound alert. Implementations are best-effort; a
// returned error is logged by the caller and never propagated further.
type Alerter interface {
	Publish(ctx context.Context, subject, body string) error
}

// alertMessage is the wire format published on the channel.
type alertMessage struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type redisAlerter struct {
	client  *redis.Client
	channel string
}

// NewRedisAlerter publishes alerts on a Redis pub/sub channel. A nil client
// or empty channel yields a disabled alerter whose Publish is a no-op.
func NewRedisAlerter(client *redis.Client, channel string) Alerter {
	return &redisAlerter{client: client, channel: channel}
}

func (a *redisAlerter) Publish(ctx context.Context, subject, body string) error {
	if a.client == nil || a.channel == "" {
		return nil
	}

	payload, err := json.Marshal(alertMessage{Subject: subject, Body: body})
	if err != nil {
		return err
	}
	return a.client.Publish(ctx, a.channel, payload).Err()
}

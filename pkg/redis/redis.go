// Package redis holds the process-wide Redis pub/sub connection used to fan
// signals out to downstream consumers.
package redis

import (
	"context"
	"fmt"
	"signal-relay/config"
	"signal-relay/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const errBufferSize = 64

// MessageHandler receives one pub/sub message. A returned error is logged and
// does not stop the subscription.
type MessageHandler func(ctx context.Context, channel string, payload []byte) error

// Client is a thin wrapper around a single go-redis client. Connection level
// failures observed by the client are reported on Errors.
type Client struct {
	rdb  *redis.Client
	log  *logger.Logger
	errs chan error
}

// NewClient connects to Redis and verifies the connection with a PING bounded
// by cfg.DialTimeout. It fails when the broker is unreachable; callers treat
// that as fatal.
func NewClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*Client, error) {
	opt, err := options(cfg)
	if err != nil {
		return nil, err
	}

	client := NewClientFromRedis(redis.NewClient(opt), log)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}

// NewClientFromRedis wraps an existing go-redis client without pinging it.
func NewClientFromRedis(rdb *redis.Client, log *logger.Logger) *Client {
	c := &Client{
		rdb:  rdb,
		log:  log,
		errs: make(chan error, errBufferSize),
	}
	rdb.AddHook(&connHook{report: c.report})
	return c
}

func options(cfg config.Redis) (*redis.Options, error) {
	var opt *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}
	return opt, nil
}

// Publish sends payload to channel and returns the number of subscribers the
// broker delivered it to. Zero receivers is not an error.
func (c *Client) Publish(ctx context.Context, channel string, payload []byte) (int64, error) {
	return c.rdb.Publish(ctx, channel, payload).Result()
}

// Subscribe blocks delivering messages from channel to handler until ctx is
// cancelled or the subscription is closed by the broker.
func (c *Client) Subscribe(ctx context.Context, channel string, handler MessageHandler) error {
	pubsub := c.rdb.Subscribe(ctx, channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}
	c.log.Info("Subscribed to channel", logger.StringField("channel", channel))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if err := handler(ctx, msg.Channel, []byte(msg.Payload)); err != nil {
				c.log.Error("Failed to handle message",
					logger.StringField("channel", msg.Channel),
					logger.ErrorField(err))
			}
		}
	}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Errors exposes connection level failures. Events are dropped when nobody
// drains the channel fast enough.
func (c *Client) Errors() <-chan error {
	return c.errs
}

// WatchErrors logs connection errors until ctx is done.
func (c *Client) WatchErrors(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-c.errs:
			c.log.Error("Redis connection error", logger.ErrorField(err))
		}
	}
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) report(err error) {
	select {
	case c.errs <- err:
	default:
	}
}

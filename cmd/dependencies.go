package cmd

import (
	"context"
	"signal-relay/config"
	"signal-relay/pkg/logger"
	"signal-relay/pkg/middleware"
	"signal-relay/pkg/redis"

	"github.com/labstack/echo/v4"
)

type AppDependency struct {
	cfg   *config.Config
	log   *logger.Logger
	echo  *echo.Echo
	redis *redis.Client
}

// newBrokerDependency loads config and connects to the broker. A broker that
// cannot be reached is returned as an error before any listener exists.
func newBrokerDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	redisClient, err := redis.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Error("Failed to connect to redis", logger.ErrorField(err))
		return nil, err
	}
	log.Info("Connected to redis", logger.StringField("addr", redisAddr(cfg.Redis)))

	return &AppDependency{
		cfg:   cfg,
		log:   log,
		redis: redisClient,
	}, nil
}

// NewAppDependency adds the HTTP router on top of the broker dependency.
func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	dep, err := newBrokerDependency(ctx)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Register(e, dep.log)
	dep.echo = e

	return dep, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	defer func() { _ = d.log.Sync() }()
	if d.redis != nil {
		return d.redis.Close()
	}
	return nil
}

// redisAddr is the address shown in logs; URLs may carry credentials.
func redisAddr(cfg config.Redis) string {
	if cfg.URL != "" {
		return "(from url)"
	}
	return cfg.Addr
}

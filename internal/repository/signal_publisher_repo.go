package repository

import (
	"context"
	"fmt"
	"signal-relay/internal/contract"
	"signal-relay/internal/dto"
	"signal-relay/pkg/common"
	"signal-relay/pkg/logger"
	"signal-relay/pkg/redis"
)

type SignalPublisherRepository interface {
	contract.SignalPublisherContract
}

type signalPublisherRepository struct {
	client *redis.Client
	logger *logger.Logger
}

func NewSignalPublisherRepository(log *logger.Logger, client *redis.Client) SignalPublisherRepository {
	return &signalPublisherRepository{
		client: client,
		logger: log,
	}
}

func (r *signalPublisherRepository) Publish(ctx context.Context, channel string, signal dto.Signal) error {
	receivers, err := r.client.Publish(ctx, channel, signal.Bytes())
	if err != nil {
		return fmt.Errorf("failed to publish signal to %s: %w", channel, err)
	}

	r.logger.DebugContext(ctx, "Signal published",
		logger.StringField(common.KEY_LOG_CHANNEL, channel),
		logger.Int64Field("receivers", receivers),
	)
	return nil
}

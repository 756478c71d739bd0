package repository

import (
	"signal-relay/pkg/logger"
	"signal-relay/pkg/redis"
)

type Repository struct {
	SignalPublisherRepo SignalPublisherRepository
}

func NewRepository(log *logger.Logger, redisClient *redis.Client) *Repository {
	return &Repository{
		SignalPublisherRepo: NewSignalPublisherRepository(log, redisClient),
	}
}

package service

import (
	"signal-relay/config"
	"signal-relay/internal/repository"
	"signal-relay/pkg/logger"
)

type Service struct {
	SignalService SignalService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
) *Service {
	return &Service{
		SignalService: NewSignalService(cfg, log, repo.SignalPublisherRepo),
	}
}

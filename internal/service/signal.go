package service

import (
	"context"
	"signal-relay/config"
	"signal-relay/internal/contract"
	"signal-relay/internal/dto"
	"signal-relay/pkg/logger"
)

type SignalService interface {
	// Relay parses body as a signal and publishes it once on the configured
	// channel. Parse failures wrap dto.ErrInvalidSignal and publish nothing.
	Relay(ctx context.Context, body []byte) error
}

type signalService struct {
	cfg       *config.Config
	log       *logger.Logger
	publisher contract.SignalPublisherContract
}

func NewSignalService(
	cfg *config.Config,
	log *logger.Logger,
	publisher contract.SignalPublisherContract,
) SignalService {
	return &signalService{
		cfg:       cfg,
		log:       log,
		publisher: publisher,
	}
}

func (s *signalService) Relay(ctx context.Context, body []byte) error {
	signal, err := dto.ParseSignal(body)
	if err != nil {
		s.log.DebugContext(ctx, "Rejected signal payload", logger.ErrorField(err))
		return err
	}

	return s.publisher.Publish(ctx, s.cfg.Redis.Channel, signal)
}

package contract

import (
	"context"
	"signal-relay/internal/dto"
)

type SignalPublisherContract interface {
	Publish(ctx context.Context, channel string, signal dto.Signal) error
}

package usecase

import (
	"context"
	"time"

	"github.com/rahmatrdn/go-product-compare/internal/event"
	"go.uber.org/zap"
)

// publish never fails the caller; a lost event is only logged.
func publish(ctx context.Context, publisher event.Publisher, logger *zap.Logger, evt event.Event) {
	evt.OccurredAt = time.Now().UTC()
	if err := publisher.Publish(ctx, evt); err != nil {
		logger.Warn("failed to publish event", zap.String("type", evt.Type), zap.String("shop", evt.Shop), zap.Error(err))
	}
}

package job

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-product-compare/internal/repository/store"
	"go.uber.org/zap"
)

// GuestListSweeper deletes guest compare lists that have been idle longer than ttl.
type GuestListSweeper struct {
	repo   store.CompareListRepository
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewGuestListSweeper(repo store.CompareListRepository, ttl time.Duration, logger *zap.Logger) *GuestListSweeper {
	return &GuestListSweeper{repo: repo, ttl: ttl, logger: logger, now: time.Now}
}

func (s *GuestListSweeper) Run(ctx context.Context) (int64, error) {
	before := s.now().Add(-s.ttl)
	deleted, err := s.repo.DeleteStaleGuestLists(ctx, before)
	if err != nil {
		s.logger.Error("guest list sweep failed", zap.Error(err))
		return 0, err
	}
	s.logger.Info("guest list sweep done", zap.Int64("deleted", deleted), zap.Time("before", before))
	return deleted, nil
}

// Schedule registers the sweep on scheduler with a crontab expression.
func (s *GuestListSweeper) Schedule(scheduler gocron.Scheduler, cron string) error {
	_, err := scheduler.NewJob(
		gocron.CronJob(cron, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			_, _ = s.Run(ctx)
		}),
		gocron.WithName("guest-list-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	return errwrap.Wrap(err, "schedule guest list sweep")
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"homecare-service/pkg/sl"
)

type FinanceSweeper interface {
	MarkOverdueFinanceRecords(ctx context.Context, before time.Time) (int64, error)
}

// StartOverdueSweep schedules the daily pass that flips pending finance
// records past their due date to LATE. The returned cron must be stopped on
// shutdown.
func StartOverdueSweep(log *slog.Logger, schedule string, store FinanceSweeper) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		today := time.Now().UTC().Truncate(24 * time.Hour)

		n, err := store.MarkOverdueFinanceRecords(ctx, today)
		if err != nil {
			log.Error("Overdue sweep failed", sl.Err(err))
			return
		}

		if n > 0 {
			log.Info("Marked finance records late", slog.Int64("count", n))
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()

	return c, nil
}

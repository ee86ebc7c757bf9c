package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Warmer interface {
	WarmDaily(ctx context.Context)
}

// DailyWarmer refreshes the once-per-day sources on a cron schedule, evaluated in the
// configured timezone so the run lands right after the local date changes.
type DailyWarmer struct {
	target Warmer
	cron   *cron.Cron
	jobs   chan struct{}
	log    *zap.Logger
}

func NewDailyWarmer(target Warmer, schedule string, loc *time.Location, log *zap.Logger) (*DailyWarmer, error) {
	w := &DailyWarmer{
		target: target,
		cron:   cron.New(cron.WithLocation(loc)),
		jobs:   make(chan struct{}, 1),
		log:    log,
	}

	if _, err := w.cron.AddFunc(schedule, w.Trigger); err != nil {
		return nil, fmt.Errorf("invalid warm-up schedule %q: %w", schedule, err)
	}
	return w, nil
}

func (w *DailyWarmer) Start(ctx context.Context) {
	w.cron.Start()

	go func() {
		w.log.Info("daily warmer started")
		for {
			select {
			case <-w.jobs:
				w.target.WarmDaily(ctx)
			case <-ctx.Done():
				<-w.cron.Stop().Done()
				w.log.Info("daily warmer stopped")
				return
			}
		}
	}()
}

// Trigger queues a warm-up run. Runs requested while one is pending coalesce.
func (w *DailyWarmer) Trigger() {
	select {
	case w.jobs <- struct{}{}:
	default:
		w.log.Debug("daily warm-up already pending")
	}
}

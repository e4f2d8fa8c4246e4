package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
)

//go:generate mockgen -source=reconciler.go -destination=reconciler_mock_test.go -package=services

// StaleGenerationRefunder refunds generations stuck in pending.
type StaleGenerationRefunder interface {
	RefundStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// StaleOrderExpirer expires unpaid orders.
type StaleOrderExpirer interface {
	ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Reconciler periodically cleans up state left behind by crashed or
// abandoned requests.
type Reconciler struct {
	generations   StaleGenerationRefunder
	orders        StaleOrderExpirer
	generationAge time.Duration
	orderAge      time.Duration
	cron          *cron.Cron
}

func NewReconciler(generations StaleGenerationRefunder, orders StaleOrderExpirer, generationAge, orderAge time.Duration) *Reconciler {
	return &Reconciler{
		generations:   generations,
		orders:        orders,
		generationAge: generationAge,
		orderAge:      orderAge,
	}
}

// Start runs RunOnce on a five-field cron expression or
// a descriptor such as "@every 1m". Overlapping runs are skipped.
func (r *Reconciler) Start(schedule string) error {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, func() { r.RunOnce(context.Background()) }); err != nil {
		return err
	}
	r.cron = c
	c.Start()
	return nil
}

// Stop stops the schedule and waits for a running pass to finish.
func (r *Reconciler) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}

// RunOnce performs a single reconciliation pass.
func (r *Reconciler) RunOnce(ctx context.Context) {
	log := logger.FromContext(ctx)

	refunded, err := r.generations.RefundStale(ctx, r.generationAge)
	if err != nil {
		log.Errorw("failed to refund stale generations", "error", err)
	} else if refunded > 0 {
		log.Infow("refunded stale generations", "count", refunded)
	}

	expired, err := r.orders.ExpireStale(ctx, r.orderAge)
	if err != nil {
		log.Errorw("failed to expire stale orders", "error", err)
	} else if expired > 0 {
		log.Infow("expired stale orders", "count", expired)
	}
}

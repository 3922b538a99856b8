package cronjobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-sentinel/pipeline"
)

// how long one sweep may run before its context is cancelled
const sweepTimeout = 5 * time.Minute

// InitCronJobs starts the pending-case sweep so confirmed reports get
// processed even when nobody clicks the dashboard button.
func InitCronJobs(orc *pipeline.Orchestrator, log *zap.Logger, schedule string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		log.Info("cron: pending case sweep running")
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		orc.SweepPending(ctx)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

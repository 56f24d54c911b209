// Package scheduler runs the periodic trending refresh so the cache is warm
// before the TTL expires.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/news"
)

// Start schedules the trending refresh on the given cron spec. An empty spec
// disables scheduling. The returned cron is already running.
func Start(spec string, trending *news.Trending, log *logging.Logger) (*cron.Cron, error) {
	if spec == "" {
		log.Infof("background refresh disabled")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := trending.Refresh(context.Background()); err != nil {
			log.Errorf("scheduled refresh failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Infof("background refresh scheduled: %s", spec)
	return c, nil
}

// Stop halts the scheduler if one is running.
func Stop(c *cron.Cron) {
	if c != nil {
		c.Stop()
	}
}

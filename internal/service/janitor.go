package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionJanitor periodically drops quiz sessions nobody finished.
type SessionJanitor struct {
	storage  SessionStorage
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionJanitor creates a janitor that runs every interval and removes
// sessions older than ttl.
func NewSessionJanitor(storage SessionStorage, ttl, interval time.Duration, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		storage:  storage,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs the cleanup schedule until ctx is cancelled.
func (j *SessionJanitor) Start(ctx context.Context) {
	j.logger.Info("session janitor started",
		zap.Duration("ttl", j.ttl),
		zap.Duration("interval", j.interval),
	)

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.Cleanup()
	})
	if err != nil {
		j.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")
}

// Cleanup removes expired sessions once and returns how many were dropped.
func (j *SessionJanitor) Cleanup() int {
	removed := j.storage.DeleteStale(j.now().Add(-j.ttl))
	if removed > 0 {
		j.logger.Info("expired quiz sessions removed", zap.Int("count", removed))
	}
	return removed
}

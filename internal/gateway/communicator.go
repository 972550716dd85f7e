package gateway

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/enoceanmqtt/internal/logging"
)

// LogCommunicator is a Communicator that only reports roster changes.
// It is used when no radio/broker communicator is linked in.
type LogCommunicator struct {
	Interval time.Duration
	Logger   *zap.Logger
}

// Run watches src until ctx is cancelled.
func (c *LogCommunicator) Run(ctx context.Context, src SensorSource) error {
	log := c.Logger
	if log == nil {
		log = logging.GetLogger().Named("gateway")
	}

	w := NewWatcher(src,
		WithInterval(c.Interval),
		WithWatcherLogger(log),
		WithOnChange(func(d Diff) {
			for _, r := range d.Added {
				log.Info("Sensor active", zap.String("name", r.Name), zap.String("eep", r.EEP()))
			}
			for _, r := range d.Changed {
				log.Info("Sensor updated", zap.String("name", r.Name), zap.String("eep", r.EEP()))
			}
			for _, r := range d.Removed {
				log.Info("Sensor removed", zap.String("name", r.Name))
			}
		}),
	)

	log.Info("Gateway running", zap.Duration("poll_interval", w.interval))
	return w.Run(ctx)
}

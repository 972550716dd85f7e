package gateway

import (
	"context"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/enoceanmqtt/internal/logging"
	"github.com/muurk/enoceanmqtt/internal/sensorconfig"
)

// DefaultPollInterval is how often a Watcher asks the store for sensors.
const DefaultPollInterval = 5 * time.Second

// SensorSource provides the current sensor roster. *sensorconfig.Store
// implements it.
type SensorSource interface {
	GetSensors() ([]sensorconfig.SensorRecord, error)
}

// Communicator consumes sensor records, typically by listening on the radio
// and publishing telemetry. Run blocks until ctx is cancelled.
type Communicator interface {
	Run(ctx context.Context, src SensorSource) error
}

// Diff describes how the roster changed between two polls.
type Diff struct {
	Added   []sensorconfig.SensorRecord
	Removed []sensorconfig.SensorRecord
	Changed []sensorconfig.SensorRecord // New version of records whose fields changed
}

// Empty reports whether nothing changed.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DiffRosters compares two rosters by section name.
func DiffRosters(previous, current []sensorconfig.SensorRecord) Diff {
	var d Diff

	old := make(map[string]sensorconfig.SensorRecord, len(previous))
	for _, r := range previous {
		old[r.Section] = r
	}

	seen := make(map[string]bool, len(current))
	for _, r := range current {
		seen[r.Section] = true
		prev, ok := old[r.Section]
		switch {
		case !ok:
			d.Added = append(d.Added, r)
		case !reflect.DeepEqual(prev, r):
			d.Changed = append(d.Changed, r)
		}
	}

	for _, r := range previous {
		if !seen[r.Section] {
			d.Removed = append(d.Removed, r)
		}
	}

	return d
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the poll interval.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithOnChange sets the callback invoked with every non-empty Diff.
func WithOnChange(fn func(Diff)) WatcherOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// WithWatcherLogger sets the logger.
func WithWatcherLogger(l *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		w.log = l
	}
}

// Watcher polls a SensorSource and reports roster changes.
type Watcher struct {
	src      SensorSource
	interval time.Duration
	onChange func(Diff)
	log      *zap.Logger

	roster []sensorconfig.SensorRecord
	primed bool
}

// NewWatcher creates a Watcher for src.
func NewWatcher(src SensorSource, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		src:      src,
		interval: DefaultPollInterval,
		log:      logging.GetLogger().Named("gateway"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Poll reads the roster once and returns what changed since the previous
// poll. The first successful poll reports every sensor as added.
func (w *Watcher) Poll() (Diff, error) {
	current, err := w.src.GetSensors()
	if err != nil {
		return Diff{}, err
	}

	d := DiffRosters(w.roster, current)
	w.roster = current
	w.primed = true

	if !d.Empty() && w.onChange != nil {
		w.onChange(d)
	}
	return d, nil
}

// Roster returns the sensors seen by the last successful poll.
func (w *Watcher) Roster() []sensorconfig.SensorRecord {
	return w.roster
}

// Run polls until ctx is cancelled. Poll errors are logged and retried on
// the next tick; the last good roster is kept meanwhile.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.Poll(); err != nil {
			w.log.Error("Failed to read sensors", zap.Error(err), zap.Bool("have_roster", w.primed))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Concrete observer implementations for reporting the progress of
// long-running operations (factorial, prime search, large powers).
package bigint

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// ProgressUpdate is a single progress sample emitted by an operation.
type ProgressUpdate struct {
	// OperationIndex identifies which concurrently-running operation the
	// sample belongs to.
	OperationIndex int
	// Value is the normalized progress, 0.0 to 1.0.
	Value float64
}

// ProgressObserver receives progress samples from running operations.
// Implementations must be safe for concurrent use: operations may report
// from multiple goroutines.
type ProgressObserver interface {
	// Update records a progress sample for one operation.
	//
	// Parameters:
	//   - opIndex: The operation instance identifier.
	//   - progress: The normalized progress value (0.0 to 1.0).
	Update(opIndex int, progress float64)
}

// ─────────────────────────────────────────────────────────────────────────────
// Channel Observer
// ─────────────────────────────────────────────────────────────────────────────

// ChannelObserver forwards progress samples to a channel, which is how the
// CLI's spinner consumes them. Sends are non-blocking: when the channel is
// full the sample is dropped and the display catches up on the next one.
type ChannelObserver struct {
	channel chan<- ProgressUpdate
}

// NewChannelObserver creates an observer that sends updates to ch.
// A nil channel yields an observer that discards every sample.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{channel: ch}
}

// Update implements ProgressObserver by sending to the channel.
func (o *ChannelObserver) Update(opIndex int, progress float64) {
	if o.channel == nil {
		return
	}
	if progress > 1.0 {
		progress = 1.0
	}
	select {
	case o.channel <- ProgressUpdate{OperationIndex: opIndex, Value: progress}:
	default:
		// Channel full; drop the sample.
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver logs progress updates using zerolog, throttled so that a
// sample is only logged when progress advanced by at least a threshold
// since the last logged sample for that operation.
type LoggingObserver struct {
	logger    zerolog.Logger
	threshold float64
	lastLog   map[int]float64
	mu        sync.Mutex
}

// NewLoggingObserver creates an observer that logs progress.
//
// Parameters:
//   - logger: The zerolog logger to use.
//   - threshold: Minimum progress change to trigger a log (e.g., 0.1 for 10%).
//
// Returns:
//   - *LoggingObserver: A new observer that logs to zerolog.
func NewLoggingObserver(logger zerolog.Logger, threshold float64) *LoggingObserver {
	if threshold <= 0 {
		threshold = 0.1
	}
	return &LoggingObserver{
		logger:    logger,
		threshold: threshold,
		lastLog:   make(map[int]float64),
	}
}

// Update implements ProgressObserver by logging significant progress changes.
func (o *LoggingObserver) Update(opIndex int, progress float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	last := o.lastLog[opIndex]
	shouldLog := progress >= 1.0 ||
		(last == 0 && progress > 0) ||
		progress-last >= o.threshold

	if shouldLog {
		o.logger.Debug().
			Int("operation", opIndex).
			Float64("progress", progress).
			Str("percent", fmt.Sprintf("%.1f%%", progress*100)).
			Msg("operation progress")
		o.lastLog[opIndex] = progress
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Metrics Observer (Prometheus)
// ─────────────────────────────────────────────────────────────────────────────

var (
	// progressGauge tracks per-operation progress. Registered once globally
	// to avoid duplicate registration errors.
	progressGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "intcalc_operation_progress",
			Help: "Current progress of arbitrary-precision operations (0.0 to 1.0)",
		},
		[]string{"operation_index"},
	)
)

// MetricsObserver exports progress samples to Prometheus as a gauge.
type MetricsObserver struct {
	gauge *prometheus.GaugeVec
}

// NewMetricsObserver creates an observer that updates Prometheus metrics.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{gauge: progressGauge}
}

// Update implements ProgressObserver by updating the Prometheus gauge.
func (o *MetricsObserver) Update(opIndex int, progress float64) {
	o.gauge.WithLabelValues(fmt.Sprintf("%d", opIndex)).Set(progress)
}

// ResetMetrics clears the progress series for all operations. Call at the
// start of a new batch.
func (o *MetricsObserver) ResetMetrics() {
	o.gauge.Reset()
}

// ─────────────────────────────────────────────────────────────────────────────
// No-Op Observer (Null Object Pattern)
// ─────────────────────────────────────────────────────────────────────────────

// NoOpObserver discards all progress updates. It is the default observer so
// that operations never have to nil-check.
type NoOpObserver struct{}

// NewNoOpObserver creates a no-op observer.
func NewNoOpObserver() *NoOpObserver { return &NoOpObserver{} }

// Update implements ProgressObserver by doing nothing.
func (o *NoOpObserver) Update(opIndex int, progress float64) {}

// ─────────────────────────────────────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────────────────────────────────────

// ObserverRegistry fans a progress stream out to several observers.
type ObserverRegistry struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewObserverRegistry creates an empty registry.
func NewObserverRegistry() *ObserverRegistry {
	return &ObserverRegistry{}
}

// Attach adds an observer to the registry. Nil observers are ignored.
func (r *ObserverRegistry) Attach(obs ProgressObserver) {
	if obs == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, obs)
}

// Update implements ProgressObserver by forwarding to every attached
// observer.
func (r *ObserverRegistry) Update(opIndex int, progress float64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, obs := range r.observers {
		obs.Update(opIndex, progress)
	}
}

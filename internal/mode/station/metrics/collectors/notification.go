package collectors

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nginxinc/weather-station/internal/mode/station/metrics"
)

// NotificationCollector collects metrics for the notification cycles of a subject.
// Implements the prometheus.Collector interface.
type NotificationCollector struct {
	// Metrics
	cyclesTotal          prometheus.Counter
	observerUpdatesTotal prometheus.Counter
	observerFailures     prometheus.Counter
	registeredObservers  prometheus.Gauge
	cycleDuration        prometheus.Histogram
}

// NewNotificationCollector creates a new NotificationCollector.
func NewNotificationCollector(constLabels map[string]string) *NotificationCollector {
	return &NotificationCollector{
		cyclesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "notification_cycles_total",
				Namespace:   metrics.Namespace,
				Help:        "Number of completed notification cycles",
				ConstLabels: constLabels,
			},
		),
		observerUpdatesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "observer_updates_total",
				Namespace:   metrics.Namespace,
				Help:        "Number of observer updates delivered",
				ConstLabels: constLabels,
			},
		),
		observerFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "observer_update_failures_total",
				Namespace:   metrics.Namespace,
				Help:        "Number of observer updates that panicked",
				ConstLabels: constLabels,
			},
		),
		registeredObservers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "registered_observers",
				Namespace:   metrics.Namespace,
				Help:        "Number of observers currently registered",
				ConstLabels: constLabels,
			},
		),
		cycleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "notification_cycle_microseconds",
				Namespace:   metrics.Namespace,
				Help:        "Duration in microseconds of a notification cycle",
				ConstLabels: constLabels,
				Buckets:     []float64{1, 10, 100, 1000, 10000, 100000},
			},
		),
	}
}

// ObserveNotificationCycle records a completed notification cycle that delivered updates to the given number of
// observers.
func (c *NotificationCollector) ObserveNotificationCycle(duration time.Duration, notified int) {
	c.cyclesTotal.Inc()
	c.observerUpdatesTotal.Add(float64(notified))
	c.cycleDuration.Observe(float64(duration.Nanoseconds()) / 1e3)
}

// IncObserverFailures increments the number of failed observer updates.
func (c *NotificationCollector) IncObserverFailures() {
	c.observerFailures.Inc()
}

// SetRegisteredObservers sets the number of registered observers.
func (c *NotificationCollector) SetRegisteredObservers(count int) {
	c.registeredObservers.Set(float64(count))
}

// Describe implements prometheus.Collector interface Describe method.
func (c *NotificationCollector) Describe(ch chan<- *prometheus.Desc) {
	c.cyclesTotal.Describe(ch)
	c.observerUpdatesTotal.Describe(ch)
	c.observerFailures.Describe(ch)
	c.registeredObservers.Describe(ch)
	c.cycleDuration.Describe(ch)
}

// Collect implements the prometheus.Collector interface Collect method.
func (c *NotificationCollector) Collect(ch chan<- prometheus.Metric) {
	c.cyclesTotal.Collect(ch)
	c.observerUpdatesTotal.Collect(ch)
	c.observerFailures.Collect(ch)
	c.registeredObservers.Collect(ch)
	c.cycleDuration.Collect(ch)
}

// NotificationNoopCollector used to initialize the NotificationCollector when metrics are disabled to avoid nil
// pointer errors.
type NotificationNoopCollector struct{}

// NewNotificationNoopCollector returns an instance of the NotificationNoopCollector.
func NewNotificationNoopCollector() *NotificationNoopCollector {
	return &NotificationNoopCollector{}
}

func (c *NotificationNoopCollector) ObserveNotificationCycle(_ time.Duration, _ int) {}

func (c *NotificationNoopCollector) IncObserverFailures() {}

func (c *NotificationNoopCollector) SetRegisteredObservers(_ int) {}

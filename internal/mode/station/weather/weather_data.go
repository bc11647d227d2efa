package weather

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/nginxinc/weather-station/internal/framework/observer"
)

// Measurements is the set of values held by WeatherData.
type Measurements struct {
	// Temperature is in degrees Celsius.
	Temperature float64
	// Humidity is the relative humidity in percent.
	Humidity float64
	// Pressure is the barometric pressure in hPa.
	Pressure float64
}

// MetricsCollector is an interface for the metrics of the notification cycles.
type MetricsCollector interface {
	ObserveNotificationCycle(duration time.Duration, notified int)
	IncObserverFailures()
	SetRegisteredObservers(count int)
}

// WeatherData stores the latest Measurements and the observers interested in them.
// WeatherData implements the observer.Subject interface,
// so that it can notify the observers when the measurements change.
// It also implements the observer.Readings interface, which is what the observers receive in their Update.
//
// WeatherData is thread-safe. The lock is never held while an observer is being updated, so an observer can
// register or remove observers (including itself) from its Update.
type WeatherData struct {
	metrics      MetricsCollector
	logger       logr.Logger
	observers    []observer.Observer
	measurements Measurements
	lock         sync.RWMutex
}

// NewWeatherData creates a new WeatherData.
func NewWeatherData(logger logr.Logger, metrics MetricsCollector) *WeatherData {
	return &WeatherData{
		observers: make([]observer.Observer, 0),
		logger:    logger,
		metrics:   metrics,
	}
}

// Register registers an observer. Registering an observer that is already registered does nothing.
func (w *WeatherData) Register(obs observer.Observer) {
	w.lock.Lock()
	defer w.lock.Unlock()

	for _, o := range w.observers {
		if sameObserver(o, obs) {
			w.logger.V(1).Info("Observer is already registered", "observer", fmt.Sprintf("%T", obs))
			return
		}
	}

	w.observers = append(w.observers, obs)
	w.metrics.SetRegisteredObservers(len(w.observers))
	w.logger.Info(
		"Registered observer",
		"observer", fmt.Sprintf("%T", obs),
		"number of registered observers", len(w.observers),
	)
}

// Remove removes an observer. Removing an observer that is not registered does nothing.
func (w *WeatherData) Remove(obs observer.Observer) {
	w.lock.Lock()
	defer w.lock.Unlock()

	remaining := make([]observer.Observer, 0, len(w.observers))
	for _, o := range w.observers {
		if !sameObserver(o, obs) {
			remaining = append(remaining, o)
		}
	}

	if len(remaining) == len(w.observers) {
		return
	}

	w.observers = remaining
	w.metrics.SetRegisteredObservers(len(w.observers))
	w.logger.Info(
		"Removed observer",
		"observer", fmt.Sprintf("%T", obs),
		"number of registered observers", len(w.observers),
	)
}

// SetMeasurements replaces the measurements and notifies all registered observers.
func (w *WeatherData) SetMeasurements(temperature, humidity, pressure float64) {
	w.lock.Lock()
	w.measurements = Measurements{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
	}
	w.lock.Unlock()

	w.logger.V(1).Info(
		"Stored measurements",
		"temperature", temperature,
		"humidity", humidity,
		"pressure", pressure,
	)

	w.Notify()
}

// Notify updates every observer registered at the moment Notify is called, once each, in registration order.
// Observers registered or removed while the notification is in progress do not affect the current cycle.
func (w *WeatherData) Notify() {
	observers := w.snapshot()

	w.logger.V(1).Info("Notifying observers", "number of registered observers", len(observers))

	start := time.Now()
	for _, o := range observers {
		w.update(o)
	}

	w.metrics.ObserveNotificationCycle(time.Since(start), len(observers))
}

// sameObserver reports whether a and b are the same observer.
// Observers of a comparable type are compared with ==. Func, map and slice observers are compared by the pointer
// they hold. Other observers that cannot be compared are never the same.
func sameObserver(a, b observer.Observer) bool {
	if a == nil || b == nil {
		return a == b
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	if va.Comparable() {
		return a == b
	}

	switch va.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

func (w *WeatherData) update(obs observer.Observer) {
	defer func() {
		if r := recover(); r != nil {
			w.metrics.IncObserverFailures()
			w.logger.Error(
				fmt.Errorf("observer update panicked: %v", r),
				"Failed to update observer",
				"observer", fmt.Sprintf("%T", obs),
			)
		}
	}()

	obs.Update(w)
}

func (w *WeatherData) snapshot() []observer.Observer {
	w.lock.RLock()
	defer w.lock.RUnlock()

	observers := make([]observer.Observer, len(w.observers))
	copy(observers, w.observers)

	return observers
}

// Observers returns a copy of the registered observers in registration order.
func (w *WeatherData) Observers() []observer.Observer {
	return w.snapshot()
}

// Measurements returns the current measurements.
func (w *WeatherData) Measurements() Measurements {
	w.lock.RLock()
	defer w.lock.RUnlock()

	return w.measurements
}

// Temperature returns the current temperature.
func (w *WeatherData) Temperature() float64 {
	return w.Measurements().Temperature
}

// Humidity returns the current relative humidity.
func (w *WeatherData) Humidity() float64 {
	return w.Measurements().Humidity
}

// Pressure returns the current pressure.
func (w *WeatherData) Pressure() float64 {
	return w.Measurements().Pressure
}

var (
	_ observer.Subject  = &WeatherData{}
	_ observer.Readings = &WeatherData{}
)

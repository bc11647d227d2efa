package observer

// Subject is an interface for objects that can be observed.
type Subject interface {
	Register(observer Observer)
	Remove(observer Observer)
	Notify()
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Observer

// Observer is an interface for objects that can observe a Subject.
// Observers are compared by identity when they are registered with or removed from a Subject.
// Func, map and slice observers are compared by the pointer they hold.
//
// Update must not let a failure escape: one Observer failing must not prevent the delivery to the next one.
type Observer interface {
	Update(subject Readings)
}

// Readings is the read-only view of the measurements that a Subject passes to its Observers.
type Readings interface {
	// Temperature returns the current temperature in degrees Celsius.
	Temperature() float64
	// Humidity returns the current relative humidity in percent.
	Humidity() float64
	// Pressure returns the current barometric pressure in hPa.
	Pressure() float64
}

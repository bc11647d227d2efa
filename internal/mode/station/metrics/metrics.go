package metrics

// Namespace is the prefix of all weather station metrics.
const Namespace = "weather_station"

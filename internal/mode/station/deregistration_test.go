package station

import (
	"bytes"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nginxinc/weather-station/internal/mode/station/display"
	"github.com/nginxinc/weather-station/internal/mode/station/metrics/collectors"
	"github.com/nginxinc/weather-station/internal/mode/station/weather"
)

var _ = Describe("Weather station with four displays", func() {
	var (
		weatherData *weather.WeatherData
		current     *display.CurrentConditions
		statistics  *display.Statistics
		forecast    *display.Forecast
		heatIndex   *display.HeatIndex
		out         *bytes.Buffer
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		weatherData = weather.NewWeatherData(logr.Discard(), collectors.NewNotificationNoopCollector())

		current = display.NewCurrentConditions(out, logr.Discard())
		statistics = display.NewStatistics(out, logr.Discard())
		forecast = display.NewForecast(out, logr.Discard())
		heatIndex = display.NewHeatIndex(out, logr.Discard())

		weatherData.Register(current)
		weatherData.Register(statistics)
		weatherData.Register(forecast)
		weatherData.Register(heatIndex)

		weatherData.SetMeasurements(26.6, 65, 1013.1)
		weatherData.SetMeasurements(27.2, 70, 1009.5)
		weatherData.SetMeasurements(25.4, 90, 1005.4)
	})

	It("updates every display on each measurement", func() {
		Expect(statistics.Count()).To(Equal(3))
		Expect(statistics.Max()).To(Equal(27.2))
		Expect(statistics.Min()).To(Equal(25.4))
		Expect(forecast.Trend()).To(Equal(display.TrendWorsening))
		Expect(forecast.LastPressure()).To(Equal(1005.4))
		Expect(heatIndex.Value()).To(BeNumerically("~", 270.75417, 1e-4))
	})

	When("the forecast display is removed", func() {
		BeforeEach(func() {
			weatherData.Remove(forecast)
			out.Reset()

			weatherData.SetMeasurements(28.0, 75, 1016.0)
		})

		It("no longer updates the forecast display", func() {
			Expect(forecast.Trend()).To(Equal(display.TrendWorsening))
			Expect(forecast.LastPressure()).To(Equal(1005.4))
			Expect(out.String()).ToNot(ContainSubstring("Forecast"))
		})

		It("still updates the other displays", func() {
			Expect(statistics.Count()).To(Equal(4))
			Expect(statistics.Max()).To(Equal(28.0))
			Expect(heatIndex.Value()).To(BeNumerically("~", 213.66234, 1e-4))
			Expect(out.String()).To(HavePrefix("Current conditions: 28.0°C and 75.0% humidity\n"))
		})

		It("keeps the remaining displays in registration order", func() {
			Expect(weatherData.Observers()).To(HaveExactElements(
				BeIdenticalTo(current),
				BeIdenticalTo(statistics),
				BeIdenticalTo(heatIndex),
			))
		})

		When("the forecast display is registered again", func() {
			BeforeEach(func() {
				weatherData.Register(forecast)
				weatherData.SetMeasurements(28.0, 75, 1016.0)
			})

			It("compares with the last pressure it has seen", func() {
				Expect(forecast.Trend()).To(Equal(display.TrendImproving))
				Expect(forecast.LastPressure()).To(Equal(1016.0))
			})
		})
	})
})

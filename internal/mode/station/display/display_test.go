package display

import (
	"bytes"
	"math"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Displays", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	Describe("CurrentConditions", func() {
		It("renders the latest temperature and humidity", func() {
			c := NewCurrentConditions(out, logr.Discard())

			c.Update(readings{temperature: 26.6, humidity: 65, pressure: 1013.1})
			c.Update(readings{temperature: 27.2, humidity: 70, pressure: 1009.5})

			Expect(out.String()).To(Equal(
				"Current conditions: 26.6°C and 65.0% humidity\n" +
					"Current conditions: 27.2°C and 70.0% humidity\n",
			))
		})
	})

	Describe("Statistics", func() {
		var s *Statistics

		BeforeEach(func() {
			s = NewStatistics(out, logr.Discard())
		})

		It("starts with no readings", func() {
			_, ok := s.Average()
			Expect(ok).To(BeFalse())
			Expect(s.Count()).To(BeZero())
			Expect(s.Max()).To(Equal(-math.MaxFloat64))
			Expect(s.Min()).To(Equal(math.MaxFloat64))

			Expect(s.Display()).To(Succeed())
			Expect(out.String()).To(Equal("Avg/Max/Min temperature = no readings yet\n"))
		})

		It("tracks the average, maximum and minimum temperature", func() {
			for _, temp := range []float64{26.6, 27.2, 25.4} {
				s.Update(readings{temperature: temp})
			}

			avg, ok := s.Average()
			Expect(ok).To(BeTrue())
			Expect(avg).To(BeNumerically("~", 26.4, 1e-9))
			Expect(s.Max()).To(Equal(27.2))
			Expect(s.Min()).To(Equal(25.4))
			Expect(s.Count()).To(Equal(3))

			Expect(out.String()).To(Equal(
				"Avg/Max/Min temperature = 26.6/26.6/26.6\n" +
					"Avg/Max/Min temperature = 26.9/27.2/26.6\n" +
					"Avg/Max/Min temperature = 26.4/27.2/25.4\n",
			))
		})

		It("handles negative temperatures", func() {
			s.Update(readings{temperature: -5})
			s.Update(readings{temperature: -10})

			Expect(s.Max()).To(Equal(-5.0))
			Expect(s.Min()).To(Equal(-10.0))
		})
	})

	Describe("Forecast", func() {
		var f *Forecast

		BeforeEach(func() {
			f = NewForecast(out, logr.Discard())
		})

		It("starts from the default pressure", func() {
			Expect(f.LastPressure()).To(Equal(DefaultPressure))
			Expect(f.Trend()).To(Equal(TrendUnknown))
		})

		It("compares each pressure with the previous one before storing it", func() {
			var trends []Trend
			for _, p := range []float64{1013.1, 1009.5, 1005.4, 1005.4} {
				f.Update(readings{pressure: p})
				trends = append(trends, f.Trend())
				Expect(f.LastPressure()).To(Equal(p))
			}

			Expect(trends).To(Equal([]Trend{TrendWorsening, TrendWorsening, TrendWorsening, TrendSame}))
			Expect(out.String()).To(Equal(
				"Forecast: Watch out for cooler, rainy weather.\n" +
					"Forecast: Watch out for cooler, rainy weather.\n" +
					"Forecast: Watch out for cooler, rainy weather.\n" +
					"Forecast: More of the same.\n",
			))
		})

		It("reports an improvement when the pressure rises", func() {
			f.Update(readings{pressure: 1016})

			Expect(f.Trend()).To(Equal(TrendImproving))
			Expect(out.String()).To(Equal("Forecast: Improving weather on the way!\n"))
		})

		DescribeTable("trend names",
			func(trend Trend, expected string) {
				Expect(trend.String()).To(Equal(expected))
			},
			Entry("improving", TrendImproving, "improving"),
			Entry("same", TrendSame, "same"),
			Entry("worsening", TrendWorsening, "worsening"),
			Entry("unknown", TrendUnknown, "unknown"),
		)
	})

	Describe("HeatIndex", func() {
		It("renders the heat index of the latest readings", func() {
			h := NewHeatIndex(out, logr.Discard())

			h.Update(readings{temperature: 80, humidity: 65})

			Expect(h.Value()).To(BeNumerically("~", 82.95535, 1e-4))
			Expect(out.String()).To(Equal("Heat index is 82.96\n"))
		})
	})

	Describe("rendering failures", func() {
		It("are logged and do not escape Update", func() {
			var logged []string
			logger := funcr.New(func(_, args string) {
				logged = append(logged, args)
			}, funcr.Options{})

			s := NewStatistics(failingWriter{}, logger)

			Expect(func() { s.Update(readings{temperature: 20}) }).ToNot(Panic())
			Expect(s.Count()).To(Equal(1))
			Expect(logged).To(HaveLen(1))
			Expect(logged[0]).To(ContainSubstring("Failed to render display"))
			Expect(logged[0]).To(ContainSubstring("write failed"))
		})
	})

	Describe("New", func() {
		It("creates every supported display", func() {
			for _, name := range Names() {
				d, err := New(name, out, logr.Discard())
				Expect(err).ToNot(HaveOccurred())
				Expect(d).ToNot(BeNil())
			}
		})

		It("creates the display matching the name", func() {
			d, err := New(ForecastName, out, logr.Discard())
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(BeAssignableToTypeOf(&Forecast{}))
		})

		It("rejects an unknown name", func() {
			d, err := New("barometer", out, logr.Discard())
			Expect(err).To(MatchError(ContainSubstring(`unknown display "barometer"`)))
			Expect(d).To(BeNil())
		})
	})
})

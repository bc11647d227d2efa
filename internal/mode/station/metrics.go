package station

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// writeMetrics writes the metrics gathered by gatherer in the Prometheus text format.
func writeMetrics(gatherer prometheus.Gatherer, out io.Writer) error {
	if out == nil {
		return nil
	}

	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("cannot gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("cannot write metrics: %w", err)
		}
	}

	return nil
}

package sessionid

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultAccepted = "accepted"
	resultEmpty    = "empty"
	resultLength   = "length"
)

var (
	metricsOnce sync.Once //nolint:gochecknoglobals

	generated prometheus.Counter     //nolint:gochecknoglobals
	read      *prometheus.CounterVec //nolint:gochecknoglobals
)

// initMetrics registers the provider counters with the default registry once per process.
func initMetrics() {
	metricsOnce.Do(func() {
		generated = promauto.NewCounter(prometheus.CounterOpts{
			Name: "noluhn_ids_generated_total",
			Help: "Number of session ids generated.",
		})

		read = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "noluhn_ids_read_total",
				Help: "Number of received session ids checked, by result.",
			},
			[]string{"result"},
		)
	})
}

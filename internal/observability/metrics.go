package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signUpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})
	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})
	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "size",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signUpsTotal, unregistrationsTotal, rosterSize)
}

// RecordSignUp counts a successful signup and updates the roster gauge.
func RecordSignUp(activity string, size int) {
	signUpsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(size))
}

// RecordUnregister counts a successful unregistration and updates the roster gauge.
func RecordUnregister(activity string, size int) {
	unregistrationsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(size))
}

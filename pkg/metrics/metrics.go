package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsDelivered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_delivered_total",
			Help: "Form submissions the mail relay accepted",
		},
		[]string{"form"},
	)

	RelayFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_relay_failures_total",
			Help: "Form submissions the mail relay rejected or never received",
		},
		[]string{"form"},
	)

	FallbackResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_fallback_resolutions_total",
			Help: "Failed submissions resolved as success by the fallback policy",
		},
		[]string{"form"},
	)
)

func Init() {
	prometheus.MustRegister(SubmissionsDelivered)
	prometheus.MustRegister(RelayFailures)
	prometheus.MustRegister(FallbackResolutions)
}

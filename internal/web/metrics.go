package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registrations_submitted_total",
		Help: "Registrations accepted, by role.",
	}, []string{"role"})

	reportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reports_generated_total",
		Help: "Printable reports generated.",
	})
)

package interp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var interpretTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "outfitter",
	Subsystem: "interp",
	Name:      "requests_total",
	Help:      "Interpretation attempts by kind (plan, phrase) and outcome (ok, cached, error).",
}, []string{"kind", "outcome"})

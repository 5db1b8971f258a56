package shops

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalog failures are swallowed by design, so the counter is the only
// place they remain visible.
var fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "outfitter",
	Subsystem: "shops",
	Name:      "fetch_total",
	Help:      "Source fetch attempts by shop and outcome (ok, empty, error).",
}, []string{"shop", "outcome"})

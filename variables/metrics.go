package variables

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "jobvars"
)

var (
	variablesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "variables",
		Name:      "dropped_total",
		Help:      "Count of seeded variables dropped because their name was empty",
	}, []string{"scope"})
	variablesSet = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "variables",
		Name:      "set_total",
		Help:      "Count of variables written with Set",
	}, []string{"scope"})
)

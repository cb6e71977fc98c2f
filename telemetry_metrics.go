package inject

import (
	"fmt"

	"github.com/rcrowley/go-metrics"
)

const metricsPrefix = "inject."

var metricNames = map[EventKind]string{
	Created:           metricsPrefix + "created",
	ReturnedShared:    metricsPrefix + "shared.hit",
	ReturnedLocal:     metricsPrefix + "local.hit",
	Overridden:        metricsPrefix + "overridden",
	RolledBack:        metricsPrefix + "rolled_back",
	OverriddenLocally: metricsPrefix + "overridden_locally",
}

// MetricName returns name of the counter NewMetricsTelemetry increments for kind.
func MetricName(kind EventKind) string {
	if name, ok := metricNames[kind]; ok {
		return name
	}

	return fmt.Sprintf("%sunknown.%d", metricsPrefix, int(kind))
}

// NewMetricsTelemetry returns Telemetry counting events per EventKind
// and, separately, events made by overriding slots.
// nil registry uses metrics.DefaultRegistry.
func NewMetricsTelemetry(registry metrics.Registry) Telemetry {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}

	return &metricsTelemetry{registry: registry}
}

type metricsTelemetry struct {
	registry metrics.Registry
}

func (t *metricsTelemetry) Record(ev Event) {
	metrics.GetOrRegisterCounter(MetricName(ev.Kind), t.registry).Inc(1)

	if ev.Override {
		metrics.GetOrRegisterCounter(metricsPrefix+"via_override", t.registry).Inc(1)
	}
}

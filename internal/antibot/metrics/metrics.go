// Package metrics counts verdicts per item kind, grounded on the teacher's
// internal/api/handler.Stats (prometheus.Counter fields registered in bulk,
// errors.Join-wrapped registration failures).
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/socialchain/antibot/internal/antibot/verdict"
	"github.com/socialchain/antibot/internal/social"
)

var ErrFailedToRegisterMetrics = errors.New("metrics: failed to register collector")

// Verdicts counts admission decisions by kind and verdict name, for the
// RPC/CLI dashboards the teacher's cmd/* binaries expose via promhttp.
type Verdicts struct {
	decisions *prometheus.CounterVec
}

// NewVerdicts builds and registers the collector.
func NewVerdicts() (*Verdicts, error) {
	v := &Verdicts{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "antibot_decisions_total",
			Help: "Total number of admission decisions by kind and verdict",
		}, []string{"kind", "verdict"}),
	}

	if err := prometheus.Register(v.decisions); err != nil {
		return nil, errors.Join(ErrFailedToRegisterMetrics, err)
	}
	return v, nil
}

// Observe records one decision.
func (v *Verdicts) Observe(kind social.Kind, result verdict.Verdict) {
	v.decisions.WithLabelValues(kind.String(), result.String()).Inc()
}

// Unregister removes the collector, for test teardown.
func (v *Verdicts) Unregister() {
	prometheus.Unregister(v.decisions)
}

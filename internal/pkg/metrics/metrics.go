// Package metrics exposes prometheus counters for the daemon.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Reloads counts configuration reloads by classification result.
	Reloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vlandevd_reloads_total",
		Help: "Configuration reloads by classification result.",
	}, []string{"result"})

	// Activations counts successful device activations.
	Activations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vlandevd_activations_total",
		Help: "Successful device activations.",
	})

	// ActivationFailures counts failed activations by the phase that failed.
	ActivationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vlandevd_activation_failures_total",
		Help: "Failed device activations by phase.",
	}, []string{"phase"})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

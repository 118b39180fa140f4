package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	transfersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transfers_total",
		Help: "Number of completed transfers.",
	})

	transferFeesSatoshisTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transfer_fees_satoshis_total",
		Help: "Cumulative satoshis retained as transfer fees.",
	})
)

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method, route string, status int) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// ObserveTransfer records one committed transfer and its retained fee.
func ObserveTransfer(fee int64) {
	transfersTotal.Inc()
	transferFeesSatoshisTotal.Add(float64(fee))
}

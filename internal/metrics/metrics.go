package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "gateway_http_requests_total", Help: "HTTP requests served"},
		[]string{"path", "code"},
	)
	RPCCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "gateway_rpc_calls_total", Help: "Node RPC calls issued"},
		[]string{"kind"},
	)
	AdminTxTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "gateway_admin_tx_total", Help: "Admin transactions submitted"},
		[]string{"action", "status"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, RPCCallsTotal, AdminTxTotal)
}

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

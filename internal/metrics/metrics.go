package metrics

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counters for the payment core. Registered on the default registry so the
// promhttp handler picks them up without extra wiring.
var (
	CardValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salonpay_card_validations_total",
		Help: "Card validation requests by detected network and outcome.",
	}, []string{"network", "result"})

	RateRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salonpay_rate_refreshes_total",
		Help: "Exchange rate refresh attempts by outcome.",
	}, []string{"result"})

	Quotes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salonpay_quotes_total",
		Help: "Price quote requests by target currency.",
	}, []string{"currency"})
)

// Serve exposes /metrics on its own plain net/http listener, separate from
// the Fiber application. The caller owns shutdown.
func Serve(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	return srv
}

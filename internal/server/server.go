// Package server assembles the Connect services, interceptors and auxiliary
// HTTP endpoints into one handler.
package server

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tripwiser/internal/auth"
	"github.com/mmynk/tripwiser/internal/metrics"
	"github.com/mmynk/tripwiser/internal/middleware"
	"github.com/mmynk/tripwiser/internal/randutil"
	"github.com/mmynk/tripwiser/internal/service"
	"github.com/mmynk/tripwiser/internal/storage"
	"github.com/mmynk/tripwiser/internal/telemetry"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
)

// Deps are the collaborators the handler needs. Metrics and Logger are
// optional.
type Deps struct {
	Store   storage.Store
	JWT     *auth.JWTManager
	Rand    *randutil.Source
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewHandler mounts every service under its Connect path, plus /healthz and,
// when metrics are configured, /metrics. The result speaks HTTP/2 cleartext.
func NewHandler(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// First listed runs outermost.
	interceptors := []connect.Interceptor{
		middleware.RecoverInterceptor(logger),
		telemetry.Interceptor(),
	}
	if d.Metrics != nil {
		interceptors = append(interceptors, d.Metrics.Interceptor())
	}
	interceptors = append(interceptors,
		middleware.LoggingInterceptor(logger),
		middleware.RequireAuth(d.JWT),
	)
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewTripServiceHandler(service.NewTripService(d.Store), opts))
	mux.Handle(apiconnect.NewExpenseServiceHandler(service.NewExpenseService(d.Store, d.Metrics), opts))
	mux.Handle(apiconnect.NewRoundServiceHandler(service.NewRoundService(d.Store, d.Rand, d.Metrics), opts))
	mux.Handle(apiconnect.NewSkinsServiceHandler(service.NewSkinsService(d.Store, d.Metrics), opts))
	mux.Handle(apiconnect.NewScorecardServiceHandler(service.NewScorecardService(d.Store), opts))
	mux.Handle(apiconnect.NewItineraryServiceHandler(service.NewItineraryService(d.Store), opts))

	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// h2c for HTTP/2 without TLS (required for Connect streaming clients)
	return h2c.NewHandler(corsMiddleware(mux), &http2.Server{})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

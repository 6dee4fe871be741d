package command

import (
	"context"
	"net/http"
	"time"

	"github.com/nstefanovic/folproof/internal/telemetry"
)

// startMetricsServer starts tel's HTTP handler in the background and
// returns a handle whose Close shuts it down. Failures to bind are
// logged through tel.Logger rather than failing the command outright,
// since metrics export is a diagnostic side channel, not the command's
// primary job.
func startMetricsServer(addr string, tel *telemetry.Telemetry) *metricsServer {
	srv := &http.Server{Addr: addr, Handler: tel.Handler()}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			tel.Logger.Warn("metrics server exited", "error", err)
		}
	}()
	return &metricsServer{srv: srv}
}

type metricsServer struct {
	srv *http.Server
}

func (m *metricsServer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = m.srv.Shutdown(ctx)
}

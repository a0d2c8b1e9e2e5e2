package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
)

const shutdownTimeout = 3 * time.Second

type config interface {
	Addr() string
}

type Server struct {
	server *http.Server
}

// NewServer returns nil when no listen address is configured.
func NewServer(config config) *Server {
	if config.Addr() == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &Server{
		server: &http.Server{
			Addr:              config.Addr(),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Serve() {
	logger.Info("metrics server listening", zap.String("addr", s.server.Addr))
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to serve metrics", zap.Error(err))
	}
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error("failed to stop metrics server", zap.Error(err))
		return
	}
	logger.Info("metrics server stopped")
}

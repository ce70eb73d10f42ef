package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func (c ServerConfig) shutdownTimeout() time.Duration {
	if c.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return c.ShutdownTimeout
}

// RunHTTPServer serves handler until ctx is cancelled, then drains in-flight
// requests for at most cfg.ShutdownTimeout. A listen failure is returned
// immediately.
func RunHTTPServer(ctx context.Context, handler http.Handler, cfg ServerConfig, audit AuditLogger) error {
	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	return serve(ctx, ln, handler, cfg, audit)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg ServerConfig, audit AuditLogger) error {
	logger := zap.L().Named("http")
	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	audit.Log(ctx, AuditLog{
		Action:  "SERVER_START",
		Message: "HTTP server starting",
		Meta:    map[string]any{"addr": ln.Addr().String()},
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", ln.Addr().String()))
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	audit.Log(context.WithoutCancel(ctx), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "HTTP server shutting down",
		Meta:    map[string]any{"cause": context.Cause(ctx).Error()},
	})

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.shutdownTimeout())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		return err
	}
	logger.Info("server exited gracefully")
	return nil
}

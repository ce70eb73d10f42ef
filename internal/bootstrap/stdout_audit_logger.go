package bootstrap

import (
	"context"
	"time"

	"go-fleetpay/internal/shared/contextutil"

	"go.uber.org/zap"
)

// ZapAuditLogger writes audit events through a dedicated "audit" logger.
type ZapAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapAuditLogger(logger *zap.Logger) *ZapAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	return &ZapAuditLogger{logger: logger.Named("audit"), now: time.Now}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.Time("at", l.now().UTC()),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
	}
	if id := contextutil.GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}
	l.logger.Info("audit event", fields...)
}

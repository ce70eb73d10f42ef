package bootstrap

import "context"

// AuditLog is one operator-visible lifecycle event of a process.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

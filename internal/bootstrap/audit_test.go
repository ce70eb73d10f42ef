package bootstrap

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-fleetpay/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	mu      sync.Mutex
	actions []string
}

func (r *recordingAudit) Log(_ context.Context, entry AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, entry.Action)
}

func (r *recordingAudit) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.actions...)
}

func TestZapAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewZapAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2026, 4, 1, 3, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "req-9")
	l.Log(ctx, AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "HTTP server shutting down",
		Meta:    map[string]any{"cause": "context canceled"},
	})
	l.Log(context.Background(), AuditLog{Action: "SERVER_START"})

	entries := logs.FilterMessage("audit event").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "audit", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Contains(t, fields, "meta")

	second := entries[1].ContextMap()
	assert.NotContains(t, second, "request_id")
	assert.NotContains(t, second, "meta")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	audit := &recordingAudit{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, handler, ServerConfig{ShutdownTimeout: time.Second}, audit)
	}()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"SERVER_START", "SERVER_SHUTDOWN"}, audit.Actions())
}

func TestRunHTTPServer_ListenError(t *testing.T) {
	err := RunHTTPServer(context.Background(), http.NotFoundHandler(), ServerConfig{Port: "-1"}, &recordingAudit{})
	assert.Error(t, err)
}

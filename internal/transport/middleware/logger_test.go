package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/dojo-forms/pkg/ctxutil"
)

func runLogged(t *testing.T, status int, prepare func(*http.Request) *http.Request) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/forms/trash", nil)
	if prepare != nil {
		req = prepare(req)
	}
	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestLogger_Success(t *testing.T) {
	t.Parallel()

	out := runLogged(t, http.StatusOK, nil)

	for _, want := range []string{`"msg":"http.request"`, `"method":"GET"`, `"path":"/api/forms/trash"`, `"status":200`, `"duration"`, `"level":"INFO"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %s, got %q", want, out)
		}
	}
	if strings.Contains(out, "actor_id") {
		t.Errorf("anonymous request should not log actor_id: %q", out)
	}
}

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusNoContent, `"level":"INFO"`},
		{http.StatusConflict, `"level":"WARN"`},
		{http.StatusInternalServerError, `"level":"ERROR"`},
	}
	for _, tt := range tests {
		if out := runLogged(t, tt.status, nil); !strings.Contains(out, tt.level) {
			t.Errorf("status %d: expected %s, got %q", tt.status, tt.level, out)
		}
	}
}

func TestLogger_IncludesContextIDs(t *testing.T) {
	t.Parallel()

	actor := uuid.New()
	out := runLogged(t, http.StatusOK, func(r *http.Request) *http.Request {
		ctx := ctxutil.WithRequestID(r.Context(), "req-123")
		ctx = ctxutil.WithActor(ctx, actor, "Sensei")
		return r.WithContext(ctx)
	})

	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Errorf("expected request_id in log, got %q", out)
	}
	if !strings.Contains(out, actor.String()) {
		t.Errorf("expected actor_id in log, got %q", out)
	}
	if !strings.Contains(out, `"actor_name":"Sensei"`) {
		t.Errorf("expected actor_name in log, got %q", out)
	}
}

func TestStatusWriter_ImplicitOK(t *testing.T) {
	t.Parallel()

	sw := newStatusWriter(httptest.NewRecorder())
	_, _ = sw.Write([]byte("hi"))
	sw.WriteHeader(http.StatusTeapot)

	if sw.status != http.StatusOK {
		t.Errorf("status = %d, want %d after implicit header", sw.status, http.StatusOK)
	}
}

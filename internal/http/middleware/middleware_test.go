package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// capHandler is a slog.Handler that keeps the attrs of the last record.
type capHandler struct {
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
	count   int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	out := make(map[string]any, len(h.base)+8)

	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})

	h.count++
	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out

	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) > 0 {
		h.base = append(h.base, attrs...)
	}

	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

func makeReq(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = (&net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 12345}).String()
	return req
}

type errEnvelope struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func TestChain_Order(t *testing.T) {
	order := []string{}

	m1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m1-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m1-end")
		})
	}

	m2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m2-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m2-end")
		})
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusTeapot)
	})

	chain := Chain(final, m1, m2)
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, makeReq("/chain"))

	require.Equal(t, []string{"m1-begin", "m2-begin", "handler", "m2-end", "m1-end"}, order)
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRequestID_GenerateAndPropagate(t *testing.T) {
	var seenID string
	var seenCtxID string

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = r.Header.Get(HeaderRequestID)
		seenCtxID = RequestIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	chain := Chain(h, RequestID())
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, makeReq("/rid"))

	respID := rr.Header().Get(HeaderRequestID)
	require.Len(t, respID, 32)
	require.Regexp(t, "^[0-9a-f]{32}$", respID)

	require.Equal(t, respID, seenID)
	require.Equal(t, respID, seenCtxID)
}

func TestRequestID_UseExisting(t *testing.T) {
	const given = "abc123-existing-id"
	var seenCtxID string

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenCtxID = RequestIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	chain := Chain(h, RequestID())
	rr := httptest.NewRecorder()
	req := makeReq("/rid2")
	req.Header.Set(HeaderRequestID, given)
	chain.ServeHTTP(rr, req)

	require.Equal(t, given, rr.Header().Get(HeaderRequestID))
	require.Equal(t, given, seenCtxID)
}

func TestRequestIDFrom_Empty(t *testing.T) {
	require.Empty(t, RequestIDFrom(context.Background()))
}

func TestTimeout_SetsDeadline_WhenAbsent(t *testing.T) {
	var hasDeadline bool
	var left time.Duration

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dl, ok := r.Context().Deadline()
		hasDeadline = ok
		if ok {
			left = time.Until(dl)
		}
		w.WriteHeader(http.StatusOK)
	})

	chain := Chain(h, Timeout(50*time.Millisecond))
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, makeReq("/timeout"))

	require.True(t, hasDeadline)
	require.Greater(t, left, time.Duration(0))
}

func TestTimeout_ZeroIsNoop(t *testing.T) {
	var hasDeadline bool

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	})

	Chain(h, Timeout(0)).ServeHTTP(httptest.NewRecorder(), makeReq("/timeout0"))
	require.False(t, hasDeadline)
}

func TestTimeout_DoesNotOverrideExistingDeadline(t *testing.T) {
	var childDL time.Time

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dl, _ := r.Context().Deadline()
		childDL = dl
		w.WriteHeader(http.StatusOK)
	})

	parent, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req := makeReq("/timeout2").WithContext(parent)

	chain := Chain(h, Timeout(1*time.Second))
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, req)

	parentDL, _ := parent.Deadline()
	require.WithinDuration(t, parentDL, childDL, time.Millisecond)
}

func TestRecover_ConvertsPanicTo500(t *testing.T) {
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	chain := Chain(panicHandler, RequestID(), Recover())
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, makeReq("/panic"))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.Equal(t, "internal", env.Code)
	require.NotContains(t, env.Error, "boom")
	require.Equal(t, rr.Header().Get(HeaderRequestID), env.RequestID)
}

func TestLogging_WritesRecord_WithStatusDurBytesAndRequestID(t *testing.T) {
	h := &capHandler{}
	logger := slog.New(h)

	const rid = "rid-456"
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// no WriteHeader: status becomes 200 on Write.
		_, _ = w.Write([]byte("0123456789"))
	})

	handler := Chain(final, RequestID(), Logging(logger))

	rr := httptest.NewRecorder()
	req := makeReq("/log")
	req.Header.Set(HeaderRequestID, rid)

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, h.count)
	require.Equal(t, "http", h.lastMsg)
	require.Equal(t, slog.LevelInfo, h.lastLvl)

	method, _ := h.attrs["method"].(string)
	path, _ := h.attrs["path"].(string)
	status, _ := h.attrs["status"].(int64)
	bytes, _ := h.attrs["bytes"].(int64)
	ridAttr, _ := h.attrs["request_id"].(string)

	require.Equal(t, http.MethodGet, method)
	require.Equal(t, "/log", path)
	require.EqualValues(t, http.StatusOK, status)
	require.EqualValues(t, 10, bytes)
	require.Equal(t, rid, ridAttr)

	_, hasDur := h.attrs["dur"]
	require.True(t, hasDur)
}

func TestLogging_ServerErrorLoggedAsError(t *testing.T) {
	h := &capHandler{}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	Chain(final, Logging(slog.New(h))).ServeHTTP(httptest.NewRecorder(), makeReq("/bad"))

	require.Equal(t, slog.LevelError, h.lastLvl)
}

func TestLogging_UsesGeneratedRequestIDAndRoute(t *testing.T) {
	h := &capHandler{}

	r := chi.NewRouter()
	r.Use(RequestID(), Logging(slog.New(h)))
	r.Get("/api/search-content", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, makeReq("/api/search-content?id=ECLI:NL:HR:2024:1"))

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, "/api/search-content", h.attrs["route"])

	generated := rr.Header().Get(HeaderRequestID)
	require.Len(t, generated, 32)
	require.Equal(t, generated, h.attrs["request_id"])
}

func TestLogging_UnmatchedRoute(t *testing.T) {
	h := &capHandler{}

	Chain(http.NotFoundHandler(), Logging(slog.New(h))).ServeHTTP(httptest.NewRecorder(), makeReq("/nope"))

	require.Equal(t, "unmatched", h.attrs["route"])
	_, hasRID := h.attrs["request_id"]
	require.False(t, hasRID)
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/api/search-content", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), makeReq("/api/search-content?id=ECLI:NL:X:1"))
	r.ServeHTTP(httptest.NewRecorder(), makeReq("/api/search-content?id=ECLI:NL:X:2"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/search-content", "404")))
	require.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	Chain(final, Metrics(nil)).ServeHTTP(rr, makeReq("/x"))
	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestStatusWriter_CountsBytes_AndDefaultStatus200(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := newStatusWriter(rr)

	_, _ = sw.Write([]byte("abcd"))

	require.Equal(t, http.StatusOK, sw.status)
	require.Equal(t, 4, sw.count)
}

func TestStatusWriter_NoWriteIs200(t *testing.T) {
	sw := newStatusWriter(httptest.NewRecorder())
	require.Equal(t, http.StatusOK, sw.Status())
}

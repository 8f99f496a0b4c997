package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSessionEvent(t *testing.T) {
	c := New()

	c.SessionEvent("login", OutcomeSuccess)
	c.SessionEvent("login", OutcomeSuccess)
	c.SessionEvent("refresh", OutcomeFailure)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.sessionEvents.WithLabelValues("login", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sessionEvents.WithLabelValues("refresh", OutcomeFailure)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.sessionEvents.WithLabelValues("logout", OutcomeSuccess)))
}

func TestUnaryServerInterceptor(t *testing.T) {
	c := New()
	icpt := c.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/accountkeeper.v1.AccountService/Login"}

	resp, err := icpt(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = icpt(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.rpcTotal.WithLabelValues(info.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.rpcTotal.WithLabelValues(info.FullMethod, "Unauthenticated")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.rpcDuration))
}

func TestHandler(t *testing.T) {
	c := New()
	c.SessionEvent("logout", OutcomeSuccess)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `accountkeeper_session_events_total{event="logout",outcome="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

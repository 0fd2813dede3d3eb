package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainCounters(t *testing.T) {
	m := New()

	m.SettlementsComputed(3)
	m.SettlementsComputed(0)
	m.PairingGenerated()
	m.SkinsRecomputed()
	m.SkinsRecomputed()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.settlements))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.settlementRuns))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pairings))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.skinsRecomputed))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SettlementsComputed(1)
		m.PairingGenerated()
		m.SkinsRecomputed()
	})
}

func TestInterceptor(t *testing.T) {
	m := New()
	interceptor := m.Interceptor()

	ok := interceptor(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, nil
	})
	fail := interceptor(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("trip missing"))
	})

	req := connect.NewRequest(&struct{}{})
	_, err := ok(context.Background(), req)
	require.NoError(t, err)
	_, err = fail(context.Background(), req)
	require.Error(t, err)

	procedure := req.Spec().Procedure
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues(procedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues(procedure, "not_found")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.PairingGenerated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "tripwiser_pairings_generated_total 1"))
}

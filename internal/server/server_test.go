package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/auth"
	"github.com/mmynk/tripwiser/internal/metrics"
	"github.com/mmynk/tripwiser/internal/randutil"
	"github.com/mmynk/tripwiser/internal/storage/sqlite"
	"github.com/mmynk/tripwiser/pkg/api"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
	"github.com/mmynk/tripwiser/pkg/logging"
)

func TestNewHandler(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	var logs bytes.Buffer
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	handler := NewHandler(Deps{
		Store:   store,
		JWT:     jwtManager,
		Rand:    randutil.NewSource(7),
		Metrics: metrics.New(),
		Logger:  logging.New(&logs, slog.LevelInfo),
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	get := func(path string) (int, string) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	code, body := get("/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	token, err := jwtManager.Generate("alice", "")
	require.NoError(t, err)
	client := apiconnect.NewTripServiceClient(http.DefaultClient, srv.URL)

	req := connect.NewRequest(&api.CreateTripRequest{Name: "Bandon"})
	req.Header().Set("Authorization", "Bearer "+token)
	created, err := client.CreateTrip(t.Context(), req)
	require.NoError(t, err)

	itinerary := apiconnect.NewItineraryServiceClient(http.DefaultClient, srv.URL)
	listReq := connect.NewRequest(&api.ListItineraryRequest{TripID: created.Msg.Trip.ID})
	listReq.Header().Set("Authorization", "Bearer "+token)
	items, err := itinerary.ListItinerary(t.Context(), listReq)
	require.NoError(t, err)
	assert.Empty(t, items.Msg.Items)

	_, err = client.ListTrips(t.Context(), connect.NewRequest(&api.ListTripsRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	code, body = get("/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `tripwiser_rpc_requests_total{code="ok",procedure="/tripwiser.v1.TripService/CreateTrip"} 1`)
	assert.Contains(t, body, `tripwiser_rpc_requests_total{code="unauthenticated",procedure="/tripwiser.v1.TripService/ListTrips"} 1`)

	assert.Contains(t, logs.String(), "RPC ok")
	assert.Contains(t, logs.String(), "RPC error")

	code, _ = get("/nowhere")
	assert.Equal(t, http.StatusNotFound, code)
}

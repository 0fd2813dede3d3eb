package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/auth"
	"github.com/mmynk/tripwiser/pkg/api"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
)

// whoAmI reports the authenticated caller as the owner of a fake trip.
type whoAmI struct {
	apiconnect.UnimplementedTripServiceHandler
}

func (whoAmI) ListTrips(ctx context.Context, _ *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return connect.NewResponse(&api.ListTripsResponse{
		Trips: []*api.Trip{{OwnerID: string(GetUserID(ctx)), Name: GetEmail(ctx)}},
	}), nil
}

func (whoAmI) GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	panic("boom")
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewTripServiceHandler(whoAmI{}, connect.WithInterceptors(
		RecoverInterceptor(logger),
		LoggingInterceptor(logger),
		RequireAuth(jwtManager),
	)))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client := apiconnect.NewTripServiceClient(http.DefaultClient, srv.URL)

	token, err := jwtManager.Generate("user-7", "seven@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   connect.Code
	}{
		{"missing header", "", connect.CodeUnauthenticated},
		{"wrong scheme", "Basic " + token, connect.CodeUnauthenticated},
		{"no token", "Bearer ", connect.CodeUnauthenticated},
		{"invalid token", "Bearer abc.def.ghi", connect.CodeUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := connect.NewRequest(&api.ListTripsRequest{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}
			_, err := client.ListTrips(t.Context(), req)
			assert.Equal(t, tt.code, connect.CodeOf(err))
		})
	}

	t.Run("valid token", func(t *testing.T) {
		req := connect.NewRequest(&api.ListTripsRequest{})
		req.Header().Set("Authorization", "bearer "+token)
		resp, err := client.ListTrips(t.Context(), req)
		require.NoError(t, err)
		require.Len(t, resp.Msg.Trips, 1)
		assert.Equal(t, "user-7", resp.Msg.Trips[0].OwnerID)
		assert.Equal(t, "seven@example.com", resp.Msg.Trips[0].Name)
	})

	t.Run("panic becomes internal", func(t *testing.T) {
		req := connect.NewRequest(&api.GetTripRequest{TripID: "t"})
		req.Header().Set("Authorization", "Bearer "+token)
		_, err := client.GetTrip(t.Context(), req)
		assert.Equal(t, connect.CodeInternal, connect.CodeOf(err))
		assert.Contains(t, logs.String(), "RPC panic")
	})

	t.Run("unimplemented", func(t *testing.T) {
		req := connect.NewRequest(&api.DeleteTripRequest{TripID: "t"})
		req.Header().Set("Authorization", "Bearer "+token)
		_, err := client.DeleteTrip(t.Context(), req)
		assert.Equal(t, connect.CodeUnimplemented, connect.CodeOf(err))
		assert.Contains(t, logs.String(), "level=ERROR")
	})
}

func TestServerFault(t *testing.T) {
	assert.True(t, serverFault(connect.CodeInternal))
	assert.False(t, serverFault(connect.CodeNotFound))
	assert.True(t, serverFault(connect.CodeOf(errors.New("plain"))))
}

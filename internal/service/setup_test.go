package service

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/internal/auth"
	"github.com/mmynk/tripwiser/internal/metrics"
	"github.com/mmynk/tripwiser/internal/middleware"
	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/randutil"
	"github.com/mmynk/tripwiser/internal/storage/sqlite"
	"github.com/mmynk/tripwiser/pkg/api"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
)

// testEnv is a running server backed by a temp database, with one client
// per service.
type testEnv struct {
	jwt *auth.JWTManager

	trips      apiconnect.TripServiceClient
	expenses   apiconnect.ExpenseServiceClient
	rounds     apiconnect.RoundServiceClient
	skins      apiconnect.SkinsServiceClient
	scorecards apiconnect.ScorecardServiceClient
	itinerary  apiconnect.ItineraryServiceClient
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	m := metrics.New()
	opts := connect.WithInterceptors(middleware.RequireAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewTripServiceHandler(NewTripService(store), opts))
	mux.Handle(apiconnect.NewExpenseServiceHandler(NewExpenseService(store, m), opts))
	mux.Handle(apiconnect.NewRoundServiceHandler(NewRoundService(store, randutil.NewSource(42), m), opts))
	mux.Handle(apiconnect.NewSkinsServiceHandler(NewSkinsService(store, m), opts))
	mux.Handle(apiconnect.NewScorecardServiceHandler(NewScorecardService(store), opts))
	mux.Handle(apiconnect.NewItineraryServiceHandler(NewItineraryService(store), opts))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{
		jwt:        jwtManager,
		trips:      apiconnect.NewTripServiceClient(http.DefaultClient, server.URL),
		expenses:   apiconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		rounds:     apiconnect.NewRoundServiceClient(http.DefaultClient, server.URL),
		skins:      apiconnect.NewSkinsServiceClient(http.DefaultClient, server.URL),
		scorecards: apiconnect.NewScorecardServiceClient(http.DefaultClient, server.URL),
		itinerary:  apiconnect.NewItineraryServiceClient(http.DefaultClient, server.URL),
	}
}

// as builds a request authenticated as user.
func as[T any](t *testing.T, env *testEnv, user models.UserID, msg *T) *connect.Request[T] {
	t.Helper()
	token, err := env.jwt.Generate(user, string(user)+"@example.com")
	require.NoError(t, err)
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

// createTrip creates a trip owned by "alice" with members named after names.
// Each handicap defaults to 0.
func createTrip(t *testing.T, env *testEnv, names ...string) *api.Trip {
	t.Helper()
	members := make([]*api.MemberInput, len(names))
	for i, n := range names {
		members[i] = &api.MemberInput{Name: n}
	}
	resp, err := env.trips.CreateTrip(t.Context(), as(t, env, "alice", &api.CreateTripRequest{
		Name:    "Myrtle Beach",
		Members: members,
	}))
	require.NoError(t, err)
	return resp.Msg.Trip
}

func requireCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}

package service

import (
	"slices"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/pkg/api"
)

func repeat(strokes int) []int {
	return slices.Repeat([]int{strokes}, 18)
}

func TestScorecardsAndLeaderboard(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.trips.CreateTrip(t.Context(), as(t, env, "alice", &api.CreateTripRequest{
		Name: "Kiawah",
		Members: []*api.MemberInput{
			{Name: "Ann", Handicap: 0},
			{Name: "Ben", Handicap: 20},
			{Name: "Cat", Handicap: 5},
		},
	}))
	require.NoError(t, err)
	trip := resp.Msg.Trip
	ann, ben := trip.Members[0].ID, trip.Members[1].ID

	created, err := env.scorecards.CreateScorecard(t.Context(), as(t, env, "alice", &api.CreateScorecardRequest{
		TripID:     trip.ID,
		CourseName: "Ocean Course",
		MemberIDs:  []string{ann, ben},
	}))
	require.NoError(t, err)
	card := created.Msg.Scorecard
	assert.Equal(t, 72, card.TotalPar)
	require.Len(t, card.Players, 2)
	assert.Equal(t, 20, card.Players[1].Handicap)

	update := func(member string, scores []int) *api.Scorecard {
		t.Helper()
		resp, err := env.scorecards.UpdateScores(t.Context(), as(t, env, "alice", &api.UpdateScoresRequest{
			TripID:      trip.ID,
			ScorecardID: card.ID,
			MemberID:    member,
			Scores:      scores,
		}))
		require.NoError(t, err)
		return resp.Msg.Scorecard
	}

	update(ann, repeat(4))
	updated := update(ben, repeat(5))
	assert.Equal(t, 72, updated.Players[0].Gross)
	assert.Equal(t, "E", updated.Players[0].VsPar)
	assert.Equal(t, 90, updated.Players[1].Gross)
	assert.Equal(t, 70, updated.Players[1].Net)
	assert.Equal(t, "+18", updated.Players[1].VsPar)

	t.Run("gross leaderboard", func(t *testing.T) {
		resp, err := env.scorecards.GetLeaderboard(t.Context(), as(t, env, "alice", &api.GetLeaderboardRequest{TripID: trip.ID}))
		require.NoError(t, err)
		entries := resp.Msg.Entries
		require.Len(t, entries, 2)
		assert.Equal(t, "Ann", entries[0].Name)
		assert.Equal(t, "E", entries[0].GrossVsPar)
		assert.Equal(t, "Ben", entries[1].Name)
		assert.Equal(t, 2, entries[1].Rank)
	})

	t.Run("net leaderboard", func(t *testing.T) {
		resp, err := env.scorecards.GetLeaderboard(t.Context(), as(t, env, "alice", &api.GetLeaderboardRequest{
			TripID: trip.ID,
			SortBy: "net",
		}))
		require.NoError(t, err)
		entries := resp.Msg.Entries
		require.Len(t, entries, 2)
		assert.Equal(t, "Ben", entries[0].Name)
		assert.Equal(t, "-2", entries[0].NetVsPar)
		assert.Equal(t, 70, entries[0].BestNet)
	})

	t.Run("ties share a rank", func(t *testing.T) {
		update(ben, repeat(4))
		resp, err := env.scorecards.GetLeaderboard(t.Context(), as(t, env, "alice", &api.GetLeaderboardRequest{TripID: trip.ID}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Entries, 2)
		assert.Equal(t, 1, resp.Msg.Entries[0].Rank)
		assert.Equal(t, 1, resp.Msg.Entries[1].Rank)
	})

	t.Run("list", func(t *testing.T) {
		resp, err := env.scorecards.ListScorecards(t.Context(), as(t, env, "alice", &api.ListScorecardsRequest{TripID: trip.ID}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Scorecards, 1)
		assert.Equal(t, "Ocean Course", resp.Msg.Scorecards[0].CourseName)
	})
}

func TestScorecard_Validation(t *testing.T) {
	env := setupTestServer(t)
	trip := createTrip(t, env, "Ann", "Ben")

	_, err := env.scorecards.CreateScorecard(t.Context(), as(t, env, "alice", &api.CreateScorecardRequest{
		TripID: trip.ID,
	}))
	requireCode(t, err, connect.CodeInvalidArgument)

	_, err = env.scorecards.CreateScorecard(t.Context(), as(t, env, "alice", &api.CreateScorecardRequest{
		TripID:     trip.ID,
		CourseName: "Short",
		Pars:       []int{4, 4, 3},
	}))
	requireCode(t, err, connect.CodeInvalidArgument)

	created, err := env.scorecards.CreateScorecard(t.Context(), as(t, env, "alice", &api.CreateScorecardRequest{
		TripID:     trip.ID,
		CourseName: "Links",
	}))
	require.NoError(t, err)
	assert.Len(t, created.Msg.Scorecard.Players, 2)

	_, err = env.scorecards.UpdateScores(t.Context(), as(t, env, "alice", &api.UpdateScoresRequest{
		TripID:      trip.ID,
		ScorecardID: created.Msg.Scorecard.ID,
		MemberID:    trip.Members[0].ID,
		Scores:      []int{4, 5},
	}))
	requireCode(t, err, connect.CodeInvalidArgument)

	_, err = env.scorecards.GetLeaderboard(t.Context(), as(t, env, "alice", &api.GetLeaderboardRequest{
		TripID: trip.ID,
		SortBy: "stableford",
	}))
	requireCode(t, err, connect.CodeInvalidArgument)
}

func TestGetAndDeleteScorecard(t *testing.T) {
	env := setupTestServer(t)
	trip := createTrip(t, env, "Ann", "Ben")
	other := createTrip(t, env, "Zed")

	created, err := env.scorecards.CreateScorecard(t.Context(), as(t, env, "alice", &api.CreateScorecardRequest{
		TripID:     trip.ID,
		CourseName: "Harbour Town",
	}))
	require.NoError(t, err)
	cardID := created.Msg.Scorecard.ID

	got, err := env.scorecards.GetScorecard(t.Context(), as(t, env, "alice", &api.GetScorecardRequest{
		TripID:      trip.ID,
		ScorecardID: cardID,
	}))
	require.NoError(t, err)
	assert.Equal(t, "Harbour Town", got.Msg.Scorecard.CourseName)
	assert.Len(t, got.Msg.Scorecard.Players, 2)

	_, err = env.scorecards.GetScorecard(t.Context(), as(t, env, "alice", &api.GetScorecardRequest{
		TripID:      other.ID,
		ScorecardID: cardID,
	}))
	requireCode(t, err, connect.CodeNotFound)

	_, err = env.scorecards.DeleteScorecard(t.Context(), as(t, env, "mallory", &api.DeleteScorecardRequest{
		TripID:      trip.ID,
		ScorecardID: cardID,
	}))
	requireCode(t, err, connect.CodePermissionDenied)

	_, err = env.scorecards.DeleteScorecard(t.Context(), as(t, env, "alice", &api.DeleteScorecardRequest{
		TripID:      trip.ID,
		ScorecardID: cardID,
	}))
	require.NoError(t, err)

	_, err = env.scorecards.GetScorecard(t.Context(), as(t, env, "alice", &api.GetScorecardRequest{
		TripID:      trip.ID,
		ScorecardID: cardID,
	}))
	requireCode(t, err, connect.CodeNotFound)
}

package service

import (
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripwiser/pkg/api"
)

func TestCreateSkinsGame_Validation(t *testing.T) {
	env := setupTestServer(t)
	trip := createTrip(t, env, "A", "B")
	a, b := trip.Members[0].ID, trip.Members[1].ID

	tests := []struct {
		name    string
		players []string
		stake   decimal.NullDecimal
	}{
		{"one player", []string{a}, decimal.NullDecimal{}},
		{"same player twice", []string{a, a}, decimal.NullDecimal{}},
		{"player not on roster", []string{a, "stranger"}, decimal.NullDecimal{}},
		{"zero stake", []string{a, b}, decimal.NewNullDecimal(decimal.Zero)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.skins.CreateSkinsGame(t.Context(), as(t, env, "alice", &api.CreateSkinsGameRequest{
				TripID:  trip.ID,
				Players: tt.players,
				Stake:   tt.stake,
			}))
			requireCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestSkinsGame(t *testing.T) {
	env := setupTestServer(t)
	trip := createTrip(t, env, "A", "B", "C", "D")
	a, b, c := trip.Members[0].ID, trip.Members[1].ID, trip.Members[2].ID

	created, err := env.skins.CreateSkinsGame(t.Context(), as(t, env, "alice", &api.CreateSkinsGameRequest{
		TripID:  trip.ID,
		Name:    "Front nine skins",
		Players: []string{a, b, c},
	}))
	require.NoError(t, err)
	game := created.Msg.Game
	assert.Equal(t, "5", game.Stake.String())
	assert.Len(t, game.Holes, 18)

	record := func(hole int, member string, strokes int) *api.RecordScoreResponse {
		t.Helper()
		resp, err := env.skins.RecordScore(t.Context(), as(t, env, "alice", &api.RecordScoreRequest{
			TripID:   trip.ID,
			GameID:   game.ID,
			Hole:     hole,
			MemberID: member,
			Strokes:  strokes,
		}))
		require.NoError(t, err)
		return resp.Msg
	}

	// Hole 1: A wins outright. Hole 2: tie carries. Hole 3: B wins two.
	record(1, a, 3)
	record(1, b, 4)
	record(1, c, 4)
	record(2, a, 4)
	record(2, b, 4)
	record(2, c, 5)
	record(3, a, 4)
	record(3, b, 3)
	last := record(3, c, 4)

	assert.Equal(t, 4, last.Game.Holes[2].Scores[c])
	res := last.Results
	assert.Equal(t, a, res.Holes[0].Winner)
	assert.True(t, res.Holes[1].CarriedOver)
	assert.Equal(t, b, res.Holes[2].Winner)
	assert.Equal(t, 2, res.Holes[2].SkinsValue)
	assert.Equal(t, 0, res.CarryoverRemaining)

	require.Len(t, res.Totals, 3)
	assert.Equal(t, a, res.Totals[0].MemberID)
	assert.Equal(t, 1, res.Totals[0].SkinsWon)
	assert.Equal(t, "5", res.Totals[0].Winnings.String())
	assert.Equal(t, 2, res.Totals[1].SkinsWon)
	assert.Equal(t, "10", res.Totals[1].Winnings.String())
	assert.Equal(t, 0, res.Totals[2].SkinsWon)
	assert.True(t, res.Totals[2].Winnings.IsZero())

	t.Run("clearing a score reopens the hole", func(t *testing.T) {
		record(3, b, 0)

		resp, err := env.skins.GetSkinsResults(t.Context(), as(t, env, "alice", &api.GetSkinsResultsRequest{
			TripID: trip.ID,
			GameID: game.ID,
		}))
		require.NoError(t, err)
		res := resp.Msg.Results
		assert.Empty(t, res.Holes[2].Winner)
		assert.True(t, res.Holes[2].CarriedOver)
		assert.Equal(t, 2, res.CarryoverRemaining)
		assert.Equal(t, 0, res.Totals[1].SkinsWon)
	})

	t.Run("invalid scores", func(t *testing.T) {
		for _, req := range []*api.RecordScoreRequest{
			{TripID: trip.ID, GameID: game.ID, Hole: 19, MemberID: a, Strokes: 4},
			{TripID: trip.ID, GameID: game.ID, Hole: 1, MemberID: a, Strokes: -1},
			{TripID: trip.ID, GameID: game.ID, Hole: 1, MemberID: trip.Members[3].ID, Strokes: 4},
		} {
			_, err := env.skins.RecordScore(t.Context(), as(t, env, "alice", req))
			requireCode(t, err, connect.CodeInvalidArgument)
		}
	})

	t.Run("stranger", func(t *testing.T) {
		_, err := env.skins.GetSkinsResults(t.Context(), as(t, env, "mallory", &api.GetSkinsResultsRequest{
			TripID: trip.ID,
			GameID: game.ID,
		}))
		requireCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("list and delete", func(t *testing.T) {
		list, err := env.skins.ListSkinsGames(t.Context(), as(t, env, "alice", &api.ListSkinsGamesRequest{TripID: trip.ID}))
		require.NoError(t, err)
		require.Len(t, list.Msg.Games, 1)

		_, err = env.skins.DeleteSkinsGame(t.Context(), as(t, env, "alice", &api.DeleteSkinsGameRequest{
			TripID: trip.ID,
			GameID: game.ID,
		}))
		require.NoError(t, err)

		_, err = env.skins.GetSkinsResults(t.Context(), as(t, env, "alice", &api.GetSkinsResultsRequest{
			TripID: trip.ID,
			GameID: game.ID,
		}))
		requireCode(t, err, connect.CodeNotFound)
	})
}

func TestCreateSkinsGame_CustomStake(t *testing.T) {
	env := setupTestServer(t)
	trip := createTrip(t, env, "A", "B")

	resp, err := env.skins.CreateSkinsGame(t.Context(), as(t, env, "alice", &api.CreateSkinsGameRequest{
		TripID:  trip.ID,
		Players: memberIDsOf(trip),
		Stake:   decimal.NewNullDecimal(decimal.RequireFromString("2.50")),
	}))
	require.NoError(t, err)
	assert.Equal(t, "2.50", resp.Msg.Game.Stake.StringFixed(2))
	assert.Equal(t, "Skins", resp.Msg.Game.Name)
}

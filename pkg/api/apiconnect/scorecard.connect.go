package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/pkg/api"
)

// ScorecardServiceName is the fully-qualified name of the ScorecardService service.
const ScorecardServiceName = "tripwiser.v1.ScorecardService"

// Fully-qualified procedure names, usable as HTTP routes.
const (
	ScorecardServiceCreateScorecardProcedure = "/tripwiser.v1.ScorecardService/CreateScorecard"
	ScorecardServiceGetScorecardProcedure    = "/tripwiser.v1.ScorecardService/GetScorecard"
	ScorecardServiceUpdateScoresProcedure    = "/tripwiser.v1.ScorecardService/UpdateScores"
	ScorecardServiceListScorecardsProcedure  = "/tripwiser.v1.ScorecardService/ListScorecards"
	ScorecardServiceDeleteScorecardProcedure = "/tripwiser.v1.ScorecardService/DeleteScorecard"
	ScorecardServiceGetLeaderboardProcedure  = "/tripwiser.v1.ScorecardService/GetLeaderboard"
)

// ScorecardServiceClient is a client for the tripwiser.v1.ScorecardService service.
type ScorecardServiceClient interface {
	CreateScorecard(context.Context, *connect.Request[api.CreateScorecardRequest]) (*connect.Response[api.CreateScorecardResponse], error)
	GetScorecard(context.Context, *connect.Request[api.GetScorecardRequest]) (*connect.Response[api.GetScorecardResponse], error)
	UpdateScores(context.Context, *connect.Request[api.UpdateScoresRequest]) (*connect.Response[api.UpdateScoresResponse], error)
	ListScorecards(context.Context, *connect.Request[api.ListScorecardsRequest]) (*connect.Response[api.ListScorecardsResponse], error)
	DeleteScorecard(context.Context, *connect.Request[api.DeleteScorecardRequest]) (*connect.Response[api.DeleteScorecardResponse], error)
	GetLeaderboard(context.Context, *connect.Request[api.GetLeaderboardRequest]) (*connect.Response[api.GetLeaderboardResponse], error)
}

// NewScorecardServiceClient constructs a client for the tripwiser.v1.ScorecardService service.
// The baseURL is the server root, e.g. http://localhost:8080.
func NewScorecardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ScorecardServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &scorecardServiceClient{
		createScorecard: connect.NewClient[api.CreateScorecardRequest, api.CreateScorecardResponse](
			httpClient,
			baseURL+ScorecardServiceCreateScorecardProcedure,
			opts...,
		),
		getScorecard: connect.NewClient[api.GetScorecardRequest, api.GetScorecardResponse](
			httpClient,
			baseURL+ScorecardServiceGetScorecardProcedure,
			opts...,
		),
		updateScores: connect.NewClient[api.UpdateScoresRequest, api.UpdateScoresResponse](
			httpClient,
			baseURL+ScorecardServiceUpdateScoresProcedure,
			opts...,
		),
		listScorecards: connect.NewClient[api.ListScorecardsRequest, api.ListScorecardsResponse](
			httpClient,
			baseURL+ScorecardServiceListScorecardsProcedure,
			opts...,
		),
		deleteScorecard: connect.NewClient[api.DeleteScorecardRequest, api.DeleteScorecardResponse](
			httpClient,
			baseURL+ScorecardServiceDeleteScorecardProcedure,
			opts...,
		),
		getLeaderboard: connect.NewClient[api.GetLeaderboardRequest, api.GetLeaderboardResponse](
			httpClient,
			baseURL+ScorecardServiceGetLeaderboardProcedure,
			opts...,
		),
	}
}

type scorecardServiceClient struct {
	createScorecard *connect.Client[api.CreateScorecardRequest, api.CreateScorecardResponse]
	getScorecard    *connect.Client[api.GetScorecardRequest, api.GetScorecardResponse]
	updateScores    *connect.Client[api.UpdateScoresRequest, api.UpdateScoresResponse]
	listScorecards  *connect.Client[api.ListScorecardsRequest, api.ListScorecardsResponse]
	deleteScorecard *connect.Client[api.DeleteScorecardRequest, api.DeleteScorecardResponse]
	getLeaderboard  *connect.Client[api.GetLeaderboardRequest, api.GetLeaderboardResponse]
}

func (c *scorecardServiceClient) CreateScorecard(ctx context.Context, req *connect.Request[api.CreateScorecardRequest]) (*connect.Response[api.CreateScorecardResponse], error) {
	return c.createScorecard.CallUnary(ctx, req)
}

func (c *scorecardServiceClient) GetScorecard(ctx context.Context, req *connect.Request[api.GetScorecardRequest]) (*connect.Response[api.GetScorecardResponse], error) {
	return c.getScorecard.CallUnary(ctx, req)
}

func (c *scorecardServiceClient) UpdateScores(ctx context.Context, req *connect.Request[api.UpdateScoresRequest]) (*connect.Response[api.UpdateScoresResponse], error) {
	return c.updateScores.CallUnary(ctx, req)
}

func (c *scorecardServiceClient) ListScorecards(ctx context.Context, req *connect.Request[api.ListScorecardsRequest]) (*connect.Response[api.ListScorecardsResponse], error) {
	return c.listScorecards.CallUnary(ctx, req)
}

func (c *scorecardServiceClient) DeleteScorecard(ctx context.Context, req *connect.Request[api.DeleteScorecardRequest]) (*connect.Response[api.DeleteScorecardResponse], error) {
	return c.deleteScorecard.CallUnary(ctx, req)
}

func (c *scorecardServiceClient) GetLeaderboard(ctx context.Context, req *connect.Request[api.GetLeaderboardRequest]) (*connect.Response[api.GetLeaderboardResponse], error) {
	return c.getLeaderboard.CallUnary(ctx, req)
}

// ScorecardServiceHandler is implemented by the server side of tripwiser.v1.ScorecardService.
type ScorecardServiceHandler interface {
	CreateScorecard(context.Context, *connect.Request[api.CreateScorecardRequest]) (*connect.Response[api.CreateScorecardResponse], error)
	GetScorecard(context.Context, *connect.Request[api.GetScorecardRequest]) (*connect.Response[api.GetScorecardResponse], error)
	UpdateScores(context.Context, *connect.Request[api.UpdateScoresRequest]) (*connect.Response[api.UpdateScoresResponse], error)
	ListScorecards(context.Context, *connect.Request[api.ListScorecardsRequest]) (*connect.Response[api.ListScorecardsResponse], error)
	DeleteScorecard(context.Context, *connect.Request[api.DeleteScorecardRequest]) (*connect.Response[api.DeleteScorecardResponse], error)
	GetLeaderboard(context.Context, *connect.Request[api.GetLeaderboardRequest]) (*connect.Response[api.GetLeaderboardResponse], error)
}

// NewScorecardServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewScorecardServiceHandler(svc ScorecardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	scorecardServiceCreateScorecardHandler := connect.NewUnaryHandler(
		ScorecardServiceCreateScorecardProcedure,
		svc.CreateScorecard,
		opts...,
	)
	scorecardServiceGetScorecardHandler := connect.NewUnaryHandler(
		ScorecardServiceGetScorecardProcedure,
		svc.GetScorecard,
		opts...,
	)
	scorecardServiceUpdateScoresHandler := connect.NewUnaryHandler(
		ScorecardServiceUpdateScoresProcedure,
		svc.UpdateScores,
		opts...,
	)
	scorecardServiceListScorecardsHandler := connect.NewUnaryHandler(
		ScorecardServiceListScorecardsProcedure,
		svc.ListScorecards,
		opts...,
	)
	scorecardServiceDeleteScorecardHandler := connect.NewUnaryHandler(
		ScorecardServiceDeleteScorecardProcedure,
		svc.DeleteScorecard,
		opts...,
	)
	scorecardServiceGetLeaderboardHandler := connect.NewUnaryHandler(
		ScorecardServiceGetLeaderboardProcedure,
		svc.GetLeaderboard,
		opts...,
	)
	return "/tripwiser.v1.ScorecardService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ScorecardServiceCreateScorecardProcedure:
			scorecardServiceCreateScorecardHandler.ServeHTTP(w, r)
		case ScorecardServiceGetScorecardProcedure:
			scorecardServiceGetScorecardHandler.ServeHTTP(w, r)
		case ScorecardServiceUpdateScoresProcedure:
			scorecardServiceUpdateScoresHandler.ServeHTTP(w, r)
		case ScorecardServiceListScorecardsProcedure:
			scorecardServiceListScorecardsHandler.ServeHTTP(w, r)
		case ScorecardServiceDeleteScorecardProcedure:
			scorecardServiceDeleteScorecardHandler.ServeHTTP(w, r)
		case ScorecardServiceGetLeaderboardProcedure:
			scorecardServiceGetLeaderboardHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedScorecardServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedScorecardServiceHandler struct{}

func (UnimplementedScorecardServiceHandler) CreateScorecard(context.Context, *connect.Request[api.CreateScorecardRequest]) (*connect.Response[api.CreateScorecardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.ScorecardService.CreateScorecard is not implemented"))
}

func (UnimplementedScorecardServiceHandler) GetScorecard(context.Context, *connect.Request[api.GetScorecardRequest]) (*connect.Response[api.GetScorecardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.ScorecardService.GetScorecard is not implemented"))
}

func (UnimplementedScorecardServiceHandler) UpdateScores(context.Context, *connect.Request[api.UpdateScoresRequest]) (*connect.Response[api.UpdateScoresResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.ScorecardService.UpdateScores is not implemented"))
}

func (UnimplementedScorecardServiceHandler) ListScorecards(context.Context, *connect.Request[api.ListScorecardsRequest]) (*connect.Response[api.ListScorecardsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.ScorecardService.ListScorecards is not implemented"))
}

func (UnimplementedScorecardServiceHandler) DeleteScorecard(context.Context, *connect.Request[api.DeleteScorecardRequest]) (*connect.Response[api.DeleteScorecardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.ScorecardService.DeleteScorecard is not implemented"))
}

func (UnimplementedScorecardServiceHandler) GetLeaderboard(context.Context, *connect.Request[api.GetLeaderboardRequest]) (*connect.Response[api.GetLeaderboardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.ScorecardService.GetLeaderboard is not implemented"))
}

package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/pkg/api"
)

// SkinsServiceName is the fully-qualified name of the SkinsService service.
const SkinsServiceName = "tripwiser.v1.SkinsService"

// Fully-qualified procedure names, usable as HTTP routes.
const (
	SkinsServiceCreateSkinsGameProcedure = "/tripwiser.v1.SkinsService/CreateSkinsGame"
	SkinsServiceRecordScoreProcedure     = "/tripwiser.v1.SkinsService/RecordScore"
	SkinsServiceGetSkinsResultsProcedure = "/tripwiser.v1.SkinsService/GetSkinsResults"
	SkinsServiceListSkinsGamesProcedure  = "/tripwiser.v1.SkinsService/ListSkinsGames"
	SkinsServiceDeleteSkinsGameProcedure = "/tripwiser.v1.SkinsService/DeleteSkinsGame"
)

// SkinsServiceClient is a client for the tripwiser.v1.SkinsService service.
type SkinsServiceClient interface {
	CreateSkinsGame(context.Context, *connect.Request[api.CreateSkinsGameRequest]) (*connect.Response[api.CreateSkinsGameResponse], error)
	RecordScore(context.Context, *connect.Request[api.RecordScoreRequest]) (*connect.Response[api.RecordScoreResponse], error)
	GetSkinsResults(context.Context, *connect.Request[api.GetSkinsResultsRequest]) (*connect.Response[api.GetSkinsResultsResponse], error)
	ListSkinsGames(context.Context, *connect.Request[api.ListSkinsGamesRequest]) (*connect.Response[api.ListSkinsGamesResponse], error)
	DeleteSkinsGame(context.Context, *connect.Request[api.DeleteSkinsGameRequest]) (*connect.Response[api.DeleteSkinsGameResponse], error)
}

// NewSkinsServiceClient constructs a client for the tripwiser.v1.SkinsService service.
// The baseURL is the server root, e.g. http://localhost:8080.
func NewSkinsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SkinsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &skinsServiceClient{
		createSkinsGame: connect.NewClient[api.CreateSkinsGameRequest, api.CreateSkinsGameResponse](
			httpClient,
			baseURL+SkinsServiceCreateSkinsGameProcedure,
			opts...,
		),
		recordScore: connect.NewClient[api.RecordScoreRequest, api.RecordScoreResponse](
			httpClient,
			baseURL+SkinsServiceRecordScoreProcedure,
			opts...,
		),
		getSkinsResults: connect.NewClient[api.GetSkinsResultsRequest, api.GetSkinsResultsResponse](
			httpClient,
			baseURL+SkinsServiceGetSkinsResultsProcedure,
			opts...,
		),
		listSkinsGames: connect.NewClient[api.ListSkinsGamesRequest, api.ListSkinsGamesResponse](
			httpClient,
			baseURL+SkinsServiceListSkinsGamesProcedure,
			opts...,
		),
		deleteSkinsGame: connect.NewClient[api.DeleteSkinsGameRequest, api.DeleteSkinsGameResponse](
			httpClient,
			baseURL+SkinsServiceDeleteSkinsGameProcedure,
			opts...,
		),
	}
}

type skinsServiceClient struct {
	createSkinsGame *connect.Client[api.CreateSkinsGameRequest, api.CreateSkinsGameResponse]
	recordScore     *connect.Client[api.RecordScoreRequest, api.RecordScoreResponse]
	getSkinsResults *connect.Client[api.GetSkinsResultsRequest, api.GetSkinsResultsResponse]
	listSkinsGames  *connect.Client[api.ListSkinsGamesRequest, api.ListSkinsGamesResponse]
	deleteSkinsGame *connect.Client[api.DeleteSkinsGameRequest, api.DeleteSkinsGameResponse]
}

func (c *skinsServiceClient) CreateSkinsGame(ctx context.Context, req *connect.Request[api.CreateSkinsGameRequest]) (*connect.Response[api.CreateSkinsGameResponse], error) {
	return c.createSkinsGame.CallUnary(ctx, req)
}

func (c *skinsServiceClient) RecordScore(ctx context.Context, req *connect.Request[api.RecordScoreRequest]) (*connect.Response[api.RecordScoreResponse], error) {
	return c.recordScore.CallUnary(ctx, req)
}

func (c *skinsServiceClient) GetSkinsResults(ctx context.Context, req *connect.Request[api.GetSkinsResultsRequest]) (*connect.Response[api.GetSkinsResultsResponse], error) {
	return c.getSkinsResults.CallUnary(ctx, req)
}

func (c *skinsServiceClient) ListSkinsGames(ctx context.Context, req *connect.Request[api.ListSkinsGamesRequest]) (*connect.Response[api.ListSkinsGamesResponse], error) {
	return c.listSkinsGames.CallUnary(ctx, req)
}

func (c *skinsServiceClient) DeleteSkinsGame(ctx context.Context, req *connect.Request[api.DeleteSkinsGameRequest]) (*connect.Response[api.DeleteSkinsGameResponse], error) {
	return c.deleteSkinsGame.CallUnary(ctx, req)
}

// SkinsServiceHandler is implemented by the server side of tripwiser.v1.SkinsService.
type SkinsServiceHandler interface {
	CreateSkinsGame(context.Context, *connect.Request[api.CreateSkinsGameRequest]) (*connect.Response[api.CreateSkinsGameResponse], error)
	RecordScore(context.Context, *connect.Request[api.RecordScoreRequest]) (*connect.Response[api.RecordScoreResponse], error)
	GetSkinsResults(context.Context, *connect.Request[api.GetSkinsResultsRequest]) (*connect.Response[api.GetSkinsResultsResponse], error)
	ListSkinsGames(context.Context, *connect.Request[api.ListSkinsGamesRequest]) (*connect.Response[api.ListSkinsGamesResponse], error)
	DeleteSkinsGame(context.Context, *connect.Request[api.DeleteSkinsGameRequest]) (*connect.Response[api.DeleteSkinsGameResponse], error)
}

// NewSkinsServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSkinsServiceHandler(svc SkinsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	skinsServiceCreateSkinsGameHandler := connect.NewUnaryHandler(
		SkinsServiceCreateSkinsGameProcedure,
		svc.CreateSkinsGame,
		opts...,
	)
	skinsServiceRecordScoreHandler := connect.NewUnaryHandler(
		SkinsServiceRecordScoreProcedure,
		svc.RecordScore,
		opts...,
	)
	skinsServiceGetSkinsResultsHandler := connect.NewUnaryHandler(
		SkinsServiceGetSkinsResultsProcedure,
		svc.GetSkinsResults,
		opts...,
	)
	skinsServiceListSkinsGamesHandler := connect.NewUnaryHandler(
		SkinsServiceListSkinsGamesProcedure,
		svc.ListSkinsGames,
		opts...,
	)
	skinsServiceDeleteSkinsGameHandler := connect.NewUnaryHandler(
		SkinsServiceDeleteSkinsGameProcedure,
		svc.DeleteSkinsGame,
		opts...,
	)
	return "/tripwiser.v1.SkinsService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SkinsServiceCreateSkinsGameProcedure:
			skinsServiceCreateSkinsGameHandler.ServeHTTP(w, r)
		case SkinsServiceRecordScoreProcedure:
			skinsServiceRecordScoreHandler.ServeHTTP(w, r)
		case SkinsServiceGetSkinsResultsProcedure:
			skinsServiceGetSkinsResultsHandler.ServeHTTP(w, r)
		case SkinsServiceListSkinsGamesProcedure:
			skinsServiceListSkinsGamesHandler.ServeHTTP(w, r)
		case SkinsServiceDeleteSkinsGameProcedure:
			skinsServiceDeleteSkinsGameHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSkinsServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSkinsServiceHandler struct{}

func (UnimplementedSkinsServiceHandler) CreateSkinsGame(context.Context, *connect.Request[api.CreateSkinsGameRequest]) (*connect.Response[api.CreateSkinsGameResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.SkinsService.CreateSkinsGame is not implemented"))
}

func (UnimplementedSkinsServiceHandler) RecordScore(context.Context, *connect.Request[api.RecordScoreRequest]) (*connect.Response[api.RecordScoreResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.SkinsService.RecordScore is not implemented"))
}

func (UnimplementedSkinsServiceHandler) GetSkinsResults(context.Context, *connect.Request[api.GetSkinsResultsRequest]) (*connect.Response[api.GetSkinsResultsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.SkinsService.GetSkinsResults is not implemented"))
}

func (UnimplementedSkinsServiceHandler) ListSkinsGames(context.Context, *connect.Request[api.ListSkinsGamesRequest]) (*connect.Response[api.ListSkinsGamesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.SkinsService.ListSkinsGames is not implemented"))
}

func (UnimplementedSkinsServiceHandler) DeleteSkinsGame(context.Context, *connect.Request[api.DeleteSkinsGameRequest]) (*connect.Response[api.DeleteSkinsGameResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.SkinsService.DeleteSkinsGame is not implemented"))
}

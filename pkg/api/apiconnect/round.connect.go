package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/pkg/api"
)

// RoundServiceName is the fully-qualified name of the RoundService service.
const RoundServiceName = "tripwiser.v1.RoundService"

// Fully-qualified procedure names, usable as HTTP routes.
const (
	RoundServiceCreateRoundProcedure    = "/tripwiser.v1.RoundService/CreateRound"
	RoundServiceReshuffleRoundProcedure = "/tripwiser.v1.RoundService/ReshuffleRound"
	RoundServiceListRoundsProcedure     = "/tripwiser.v1.RoundService/ListRounds"
	RoundServiceDeleteRoundProcedure    = "/tripwiser.v1.RoundService/DeleteRound"
)

// RoundServiceClient is a client for the tripwiser.v1.RoundService service.
type RoundServiceClient interface {
	CreateRound(context.Context, *connect.Request[api.CreateRoundRequest]) (*connect.Response[api.CreateRoundResponse], error)
	ReshuffleRound(context.Context, *connect.Request[api.ReshuffleRoundRequest]) (*connect.Response[api.ReshuffleRoundResponse], error)
	ListRounds(context.Context, *connect.Request[api.ListRoundsRequest]) (*connect.Response[api.ListRoundsResponse], error)
	DeleteRound(context.Context, *connect.Request[api.DeleteRoundRequest]) (*connect.Response[api.DeleteRoundResponse], error)
}

// NewRoundServiceClient constructs a client for the tripwiser.v1.RoundService service.
// The baseURL is the server root, e.g. http://localhost:8080.
func NewRoundServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RoundServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &roundServiceClient{
		createRound: connect.NewClient[api.CreateRoundRequest, api.CreateRoundResponse](
			httpClient,
			baseURL+RoundServiceCreateRoundProcedure,
			opts...,
		),
		reshuffleRound: connect.NewClient[api.ReshuffleRoundRequest, api.ReshuffleRoundResponse](
			httpClient,
			baseURL+RoundServiceReshuffleRoundProcedure,
			opts...,
		),
		listRounds: connect.NewClient[api.ListRoundsRequest, api.ListRoundsResponse](
			httpClient,
			baseURL+RoundServiceListRoundsProcedure,
			opts...,
		),
		deleteRound: connect.NewClient[api.DeleteRoundRequest, api.DeleteRoundResponse](
			httpClient,
			baseURL+RoundServiceDeleteRoundProcedure,
			opts...,
		),
	}
}

type roundServiceClient struct {
	createRound    *connect.Client[api.CreateRoundRequest, api.CreateRoundResponse]
	reshuffleRound *connect.Client[api.ReshuffleRoundRequest, api.ReshuffleRoundResponse]
	listRounds     *connect.Client[api.ListRoundsRequest, api.ListRoundsResponse]
	deleteRound    *connect.Client[api.DeleteRoundRequest, api.DeleteRoundResponse]
}

func (c *roundServiceClient) CreateRound(ctx context.Context, req *connect.Request[api.CreateRoundRequest]) (*connect.Response[api.CreateRoundResponse], error) {
	return c.createRound.CallUnary(ctx, req)
}

func (c *roundServiceClient) ReshuffleRound(ctx context.Context, req *connect.Request[api.ReshuffleRoundRequest]) (*connect.Response[api.ReshuffleRoundResponse], error) {
	return c.reshuffleRound.CallUnary(ctx, req)
}

func (c *roundServiceClient) ListRounds(ctx context.Context, req *connect.Request[api.ListRoundsRequest]) (*connect.Response[api.ListRoundsResponse], error) {
	return c.listRounds.CallUnary(ctx, req)
}

func (c *roundServiceClient) DeleteRound(ctx context.Context, req *connect.Request[api.DeleteRoundRequest]) (*connect.Response[api.DeleteRoundResponse], error) {
	return c.deleteRound.CallUnary(ctx, req)
}

// RoundServiceHandler is implemented by the server side of tripwiser.v1.RoundService.
type RoundServiceHandler interface {
	CreateRound(context.Context, *connect.Request[api.CreateRoundRequest]) (*connect.Response[api.CreateRoundResponse], error)
	ReshuffleRound(context.Context, *connect.Request[api.ReshuffleRoundRequest]) (*connect.Response[api.ReshuffleRoundResponse], error)
	ListRounds(context.Context, *connect.Request[api.ListRoundsRequest]) (*connect.Response[api.ListRoundsResponse], error)
	DeleteRound(context.Context, *connect.Request[api.DeleteRoundRequest]) (*connect.Response[api.DeleteRoundResponse], error)
}

// NewRoundServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewRoundServiceHandler(svc RoundServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	roundServiceCreateRoundHandler := connect.NewUnaryHandler(
		RoundServiceCreateRoundProcedure,
		svc.CreateRound,
		opts...,
	)
	roundServiceReshuffleRoundHandler := connect.NewUnaryHandler(
		RoundServiceReshuffleRoundProcedure,
		svc.ReshuffleRound,
		opts...,
	)
	roundServiceListRoundsHandler := connect.NewUnaryHandler(
		RoundServiceListRoundsProcedure,
		svc.ListRounds,
		opts...,
	)
	roundServiceDeleteRoundHandler := connect.NewUnaryHandler(
		RoundServiceDeleteRoundProcedure,
		svc.DeleteRound,
		opts...,
	)
	return "/tripwiser.v1.RoundService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RoundServiceCreateRoundProcedure:
			roundServiceCreateRoundHandler.ServeHTTP(w, r)
		case RoundServiceReshuffleRoundProcedure:
			roundServiceReshuffleRoundHandler.ServeHTTP(w, r)
		case RoundServiceListRoundsProcedure:
			roundServiceListRoundsHandler.ServeHTTP(w, r)
		case RoundServiceDeleteRoundProcedure:
			roundServiceDeleteRoundHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedRoundServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedRoundServiceHandler struct{}

func (UnimplementedRoundServiceHandler) CreateRound(context.Context, *connect.Request[api.CreateRoundRequest]) (*connect.Response[api.CreateRoundResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.RoundService.CreateRound is not implemented"))
}

func (UnimplementedRoundServiceHandler) ReshuffleRound(context.Context, *connect.Request[api.ReshuffleRoundRequest]) (*connect.Response[api.ReshuffleRoundResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.RoundService.ReshuffleRound is not implemented"))
}

func (UnimplementedRoundServiceHandler) ListRounds(context.Context, *connect.Request[api.ListRoundsRequest]) (*connect.Response[api.ListRoundsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.RoundService.ListRounds is not implemented"))
}

func (UnimplementedRoundServiceHandler) DeleteRound(context.Context, *connect.Request[api.DeleteRoundRequest]) (*connect.Response[api.DeleteRoundResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.RoundService.DeleteRound is not implemented"))
}

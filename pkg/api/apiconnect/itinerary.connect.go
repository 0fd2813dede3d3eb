package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/pkg/api"
)

// ItineraryServiceName is the fully-qualified name of the ItineraryService service.
const ItineraryServiceName = "tripwiser.v1.ItineraryService"

// Fully-qualified procedure names, usable as HTTP routes.
const (
	ItineraryServiceAddItineraryItemProcedure    = "/tripwiser.v1.ItineraryService/AddItineraryItem"
	ItineraryServiceListItineraryProcedure       = "/tripwiser.v1.ItineraryService/ListItinerary"
	ItineraryServiceDeleteItineraryItemProcedure = "/tripwiser.v1.ItineraryService/DeleteItineraryItem"
)

// ItineraryServiceClient is a client for the tripwiser.v1.ItineraryService service.
type ItineraryServiceClient interface {
	AddItineraryItem(context.Context, *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error)
	ListItinerary(context.Context, *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error)
	DeleteItineraryItem(context.Context, *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error)
}

// NewItineraryServiceClient constructs a client for the tripwiser.v1.ItineraryService service.
// The baseURL is the server root, e.g. http://localhost:8080.
func NewItineraryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ItineraryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &itineraryServiceClient{
		addItineraryItem: connect.NewClient[api.AddItineraryItemRequest, api.AddItineraryItemResponse](
			httpClient,
			baseURL+ItineraryServiceAddItineraryItemProcedure,
			opts...,
		),
		listItinerary: connect.NewClient[api.ListItineraryRequest, api.ListItineraryResponse](
			httpClient,
			baseURL+ItineraryServiceListItineraryProcedure,
			opts...,
		),
		deleteItineraryItem: connect.NewClient[api.DeleteItineraryItemRequest, api.DeleteItineraryItemResponse](
			httpClient,
			baseURL+ItineraryServiceDeleteItineraryItemProcedure,
			opts...,
		),
	}
}

type itineraryServiceClient struct {
	addItineraryItem    *connect.Client[api.AddItineraryItemRequest, api.AddItineraryItemResponse]
	listItinerary       *connect.Client[api.ListItineraryRequest, api.ListItineraryResponse]
	deleteItineraryItem *connect.Client[api.DeleteItineraryItemRequest, api.DeleteItineraryItemResponse]
}

func (c *itineraryServiceClient) AddItineraryItem(ctx context.Context, req *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error) {
	return c.addItineraryItem.CallUnary(ctx, req)
}

func (c *itineraryServiceClient) ListItinerary(ctx context.Context, req *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error) {
	return c.listItinerary.CallUnary(ctx, req)
}

func (c *itineraryServiceClient) DeleteItineraryItem(ctx context.Context, req *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error) {
	return c.deleteItineraryItem.CallUnary(ctx, req)
}

// ItineraryServiceHandler is implemented by the server side of tripwiser.v1.ItineraryService.
type ItineraryServiceHandler interface {
	AddItineraryItem(context.Context, *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error)
	ListItinerary(context.Context, *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error)
	DeleteItineraryItem(context.Context, *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error)
}

// NewItineraryServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewItineraryServiceHandler(svc ItineraryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	itineraryServiceAddItineraryItemHandler := connect.NewUnaryHandler(
		ItineraryServiceAddItineraryItemProcedure,
		svc.AddItineraryItem,
		opts...,
	)
	itineraryServiceListItineraryHandler := connect.NewUnaryHandler(
		ItineraryServiceListItineraryProcedure,
		svc.ListItinerary,
		opts...,
	)
	itineraryServiceDeleteItineraryItemHandler := connect.NewUnaryHandler(
		ItineraryServiceDeleteItineraryItemProcedure,
		svc.DeleteItineraryItem,
		opts...,
	)
	return "/tripwiser.v1.ItineraryService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ItineraryServiceAddItineraryItemProcedure:
			itineraryServiceAddItineraryItemHandler.ServeHTTP(w, r)
		case ItineraryServiceListItineraryProcedure:
			itineraryServiceListItineraryHandler.ServeHTTP(w, r)
		case ItineraryServiceDeleteItineraryItemProcedure:
			itineraryServiceDeleteItineraryItemHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedItineraryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedItineraryServiceHandler struct{}

func (UnimplementedItineraryServiceHandler) AddItineraryItem(context.Context, *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.ItineraryService.AddItineraryItem is not implemented"))
}

func (UnimplementedItineraryServiceHandler) ListItinerary(context.Context, *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.ItineraryService.ListItinerary is not implemented"))
}

func (UnimplementedItineraryServiceHandler) DeleteItineraryItem(context.Context, *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.ItineraryService.DeleteItineraryItem is not implemented"))
}

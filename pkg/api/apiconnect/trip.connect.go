package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/pkg/api"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "tripwiser.v1.TripService"

// Fully-qualified procedure names, usable as HTTP routes.
const (
	TripServiceCreateTripProcedure   = "/tripwiser.v1.TripService/CreateTrip"
	TripServiceGetTripProcedure      = "/tripwiser.v1.TripService/GetTrip"
	TripServiceListTripsProcedure    = "/tripwiser.v1.TripService/ListTrips"
	TripServiceUpdateTripProcedure   = "/tripwiser.v1.TripService/UpdateTrip"
	TripServiceDeleteTripProcedure   = "/tripwiser.v1.TripService/DeleteTrip"
	TripServiceAddMemberProcedure    = "/tripwiser.v1.TripService/AddMember"
	TripServiceUpdateMemberProcedure = "/tripwiser.v1.TripService/UpdateMember"
	TripServiceRemoveMemberProcedure = "/tripwiser.v1.TripService/RemoveMember"
)

// TripServiceClient is a client for the tripwiser.v1.TripService service.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	RemoveMember(context.Context, *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error)
}

// NewTripServiceClient constructs a client for the tripwiser.v1.TripService service.
// The baseURL is the server root, e.g. http://localhost:8080.
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &tripServiceClient{
		createTrip: connect.NewClient[api.CreateTripRequest, api.CreateTripResponse](
			httpClient,
			baseURL+TripServiceCreateTripProcedure,
			opts...,
		),
		getTrip: connect.NewClient[api.GetTripRequest, api.GetTripResponse](
			httpClient,
			baseURL+TripServiceGetTripProcedure,
			opts...,
		),
		listTrips: connect.NewClient[api.ListTripsRequest, api.ListTripsResponse](
			httpClient,
			baseURL+TripServiceListTripsProcedure,
			opts...,
		),
		updateTrip: connect.NewClient[api.UpdateTripRequest, api.UpdateTripResponse](
			httpClient,
			baseURL+TripServiceUpdateTripProcedure,
			opts...,
		),
		deleteTrip: connect.NewClient[api.DeleteTripRequest, api.DeleteTripResponse](
			httpClient,
			baseURL+TripServiceDeleteTripProcedure,
			opts...,
		),
		addMember: connect.NewClient[api.AddMemberRequest, api.AddMemberResponse](
			httpClient,
			baseURL+TripServiceAddMemberProcedure,
			opts...,
		),
		updateMember: connect.NewClient[api.UpdateMemberRequest, api.UpdateMemberResponse](
			httpClient,
			baseURL+TripServiceUpdateMemberProcedure,
			opts...,
		),
		removeMember: connect.NewClient[api.RemoveMemberRequest, api.RemoveMemberResponse](
			httpClient,
			baseURL+TripServiceRemoveMemberProcedure,
			opts...,
		),
	}
}

type tripServiceClient struct {
	createTrip   *connect.Client[api.CreateTripRequest, api.CreateTripResponse]
	getTrip      *connect.Client[api.GetTripRequest, api.GetTripResponse]
	listTrips    *connect.Client[api.ListTripsRequest, api.ListTripsResponse]
	updateTrip   *connect.Client[api.UpdateTripRequest, api.UpdateTripResponse]
	deleteTrip   *connect.Client[api.DeleteTripRequest, api.DeleteTripResponse]
	addMember    *connect.Client[api.AddMemberRequest, api.AddMemberResponse]
	updateMember *connect.Client[api.UpdateMemberRequest, api.UpdateMemberResponse]
	removeMember *connect.Client[api.RemoveMemberRequest, api.RemoveMemberResponse]
}

func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

func (c *tripServiceClient) UpdateTrip(ctx context.Context, req *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	return c.updateTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *tripServiceClient) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

func (c *tripServiceClient) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	return c.removeMember.CallUnary(ctx, req)
}

// TripServiceHandler is implemented by the server side of tripwiser.v1.TripService.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	RemoveMember(context.Context, *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error)
}

// NewTripServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	tripServiceCreateTripHandler := connect.NewUnaryHandler(
		TripServiceCreateTripProcedure,
		svc.CreateTrip,
		opts...,
	)
	tripServiceGetTripHandler := connect.NewUnaryHandler(
		TripServiceGetTripProcedure,
		svc.GetTrip,
		opts...,
	)
	tripServiceListTripsHandler := connect.NewUnaryHandler(
		TripServiceListTripsProcedure,
		svc.ListTrips,
		opts...,
	)
	tripServiceUpdateTripHandler := connect.NewUnaryHandler(
		TripServiceUpdateTripProcedure,
		svc.UpdateTrip,
		opts...,
	)
	tripServiceDeleteTripHandler := connect.NewUnaryHandler(
		TripServiceDeleteTripProcedure,
		svc.DeleteTrip,
		opts...,
	)
	tripServiceAddMemberHandler := connect.NewUnaryHandler(
		TripServiceAddMemberProcedure,
		svc.AddMember,
		opts...,
	)
	tripServiceUpdateMemberHandler := connect.NewUnaryHandler(
		TripServiceUpdateMemberProcedure,
		svc.UpdateMember,
		opts...,
	)
	tripServiceRemoveMemberHandler := connect.NewUnaryHandler(
		TripServiceRemoveMemberProcedure,
		svc.RemoveMember,
		opts...,
	)
	return "/tripwiser.v1.TripService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TripServiceCreateTripProcedure:
			tripServiceCreateTripHandler.ServeHTTP(w, r)
		case TripServiceGetTripProcedure:
			tripServiceGetTripHandler.ServeHTTP(w, r)
		case TripServiceListTripsProcedure:
			tripServiceListTripsHandler.ServeHTTP(w, r)
		case TripServiceUpdateTripProcedure:
			tripServiceUpdateTripHandler.ServeHTTP(w, r)
		case TripServiceDeleteTripProcedure:
			tripServiceDeleteTripHandler.ServeHTTP(w, r)
		case TripServiceAddMemberProcedure:
			tripServiceAddMemberHandler.ServeHTTP(w, r)
		case TripServiceUpdateMemberProcedure:
			tripServiceUpdateMemberHandler.ServeHTTP(w, r)
		case TripServiceRemoveMemberProcedure:
			tripServiceRemoveMemberHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTripServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTripServiceHandler struct{}

func (UnimplementedTripServiceHandler) CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.TripService.CreateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.TripService.GetTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.TripService.ListTrips is not implemented"))
}

func (UnimplementedTripServiceHandler) UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.TripService.UpdateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.TripService.DeleteTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.TripService.AddMember is not implemented"))
}

func (UnimplementedTripServiceHandler) UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.TripService.UpdateMember is not implemented"))
}

func (UnimplementedTripServiceHandler) RemoveMember(context.Context, *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripwiser.v1.TripService.RemoveMember is not implemented"))
}

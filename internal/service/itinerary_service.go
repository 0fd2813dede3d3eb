package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripwiser/internal/models"
	"github.com/mmynk/tripwiser/internal/storage"
	"github.com/mmynk/tripwiser/pkg/api"
	"github.com/mmynk/tripwiser/pkg/api/apiconnect"
)

// ItineraryService implements the Connect ItineraryService.
type ItineraryService struct {
	apiconnect.UnimplementedItineraryServiceHandler
	store storage.Store
}

// NewItineraryService creates a new ItineraryService with the given storage backend.
func NewItineraryService(store storage.Store) *ItineraryService {
	return &ItineraryService{store: store}
}

// AddItineraryItem appends an event to the trip schedule.
func (s *ItineraryService) AddItineraryItem(ctx context.Context, req *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("AddItineraryItem request received",
		"trip_id", tripID,
		"type", req.Msg.Type,
		"date", req.Msg.Date,
	)

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Msg.Title)
	if title == "" {
		return nil, invalidArgument("title required")
	}
	itemType := models.ItemType(req.Msg.Type)
	if itemType == "" {
		itemType = models.ItemOther
	}
	if !itemType.Valid() {
		return nil, invalidArgument("unknown itinerary type %q", req.Msg.Type)
	}
	if req.Msg.Date != "" {
		if _, err := time.Parse(time.DateOnly, req.Msg.Date); err != nil {
			return nil, invalidArgument("date %q is not YYYY-MM-DD", req.Msg.Date)
		}
	}
	if req.Msg.Time != "" {
		if _, err := time.Parse("15:04", req.Msg.Time); err != nil {
			return nil, invalidArgument("time %q is not HH:MM", req.Msg.Time)
		}
	}

	item := &models.ItineraryItem{
		TripID:      tripID,
		Date:        req.Msg.Date,
		Time:        req.Msg.Time,
		Type:        itemType,
		Title:       title,
		Description: req.Msg.Description,
	}
	if err := s.store.CreateItineraryItem(ctx, item); err != nil {
		slog.Error("AddItineraryItem failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Itinerary item added", "trip_id", tripID, "item_id", item.ID, "sort_order", item.SortOrder)
	return connect.NewResponse(&api.AddItineraryItemResponse{Item: toAPIItineraryItem(item)}), nil
}

// ListItinerary returns the trip schedule in chronological order.
func (s *ItineraryService) ListItinerary(ctx context.Context, req *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	slog.Info("ListItinerary request received", "trip_id", tripID)

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	items, err := s.store.ListItineraryByTrip(ctx, tripID)
	if err != nil {
		slog.Error("ListItinerary failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.ItineraryItem, len(items))
	for i, item := range items {
		out[i] = toAPIItineraryItem(item)
	}
	return connect.NewResponse(&api.ListItineraryResponse{Items: out}), nil
}

// DeleteItineraryItem removes an event from the trip schedule.
func (s *ItineraryService) DeleteItineraryItem(ctx context.Context, req *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error) {
	tripID := models.TripID(req.Msg.TripID)
	itemID := models.ItemID(req.Msg.ItemID)
	slog.Info("DeleteItineraryItem request received", "trip_id", tripID, "item_id", itemID)

	if err := authorize(ctx, s.store, tripID); err != nil {
		return nil, err
	}

	item, err := s.store.GetItineraryItem(ctx, itemID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if item.TripID != tripID {
		return nil, notInTrip("itinerary item", string(itemID))
	}

	if err := s.store.DeleteItineraryItem(ctx, itemID); err != nil {
		slog.Error("DeleteItineraryItem failed", "item_id", itemID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Itinerary item deleted", "trip_id", tripID, "item_id", itemID)
	return connect.NewResponse(&api.DeleteItineraryItemResponse{}), nil
}

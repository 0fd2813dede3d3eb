package api

// ItineraryItem is one scheduled event of a trip.
type ItineraryItem struct {
	ID          string `json:"id"`
	TripID      string `json:"tripId"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	CreatedAt   int64  `json:"createdAt"`
}

type AddItineraryItemRequest struct {
	TripID string `json:"tripId"`

	// Date is YYYY-MM-DD and Time is HH:MM. Both are optional.
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`

	// Type is one of tee_time, dinner, activity, travel or other (default).
	Type        string `json:"type,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type AddItineraryItemResponse struct {
	Item *ItineraryItem `json:"item"`
}

type ListItineraryRequest struct {
	TripID string `json:"tripId"`
}

type ListItineraryResponse struct {
	Items []*ItineraryItem `json:"items"`
}

type DeleteItineraryItemRequest struct {
	TripID string `json:"tripId"`
	ItemID string `json:"itemId"`
}

type DeleteItineraryItemResponse struct{}

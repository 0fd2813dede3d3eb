package models

// ItemType categorizes an itinerary entry.
type ItemType string

const (
	ItemTeeTime  ItemType = "tee_time"
	ItemDinner   ItemType = "dinner"
	ItemActivity ItemType = "activity"
	ItemTravel   ItemType = "travel"
	ItemOther    ItemType = "other"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTeeTime, ItemDinner, ItemActivity, ItemTravel, ItemOther:
		return true
	}
	return false
}

// ItineraryItem is one scheduled event of a trip.
type ItineraryItem struct {
	ID     ItemID
	TripID TripID

	// Date (YYYY-MM-DD) and Time (HH:MM) are free text; either may be empty.
	Date string
	Time string

	Type        ItemType
	Title       string
	Description string

	// SortOrder is assigned by the store: one past the trip's last item.
	SortOrder int

	CreatedAt int64
}

package domain

import (
	"strings"
	"time"
)

// Location is the household currently holding an item.
type Location string

const (
	LocationMyHouse         Location = "my_house"
	LocationGirlfriendHouse Location = "girlfriends_house"

	// legacyLocationGirlfriendHouse is the spelling declared in the original
	// schema enum. Nothing writes it, but old records may carry it.
	legacyLocationGirlfriendHouse Location = "girlfriend_house"
)

// DefaultLocation is where newly added items start.
const DefaultLocation = LocationMyHouse

// Locations lists every valid location in sort order.
var Locations = []Location{LocationGirlfriendHouse, LocationMyHouse}

// Valid reports whether l is one of the enumerated locations.
func (l Location) Valid() bool {
	return l == LocationMyHouse || l == LocationGirlfriendHouse
}

// Toggle returns the other household.
func (l Location) Toggle() Location {
	if l == LocationMyHouse {
		return LocationGirlfriendHouse
	}
	return LocationMyHouse
}

// Label is the user-facing form, e.g. "my house".
func (l Location) Label() string {
	return strings.Replace(string(l), "_", " ", 1)
}

// StoredForms lists the raw stored values that ParseLocation maps to l.
func (l Location) StoredForms() []string {
	switch l {
	case LocationMyHouse:
		return []string{string(LocationMyHouse), ""}
	case LocationGirlfriendHouse:
		return []string{string(LocationGirlfriendHouse), string(legacyLocationGirlfriendHouse)}
	default:
		return []string{string(l)}
	}
}

// ParseLocation normalizes a stored location value. An empty value maps to
// DefaultLocation. Matching is exact so that every accepted value is one of
// StoredForms, which the stores filter on.
func ParseLocation(s string) (Location, error) {
	switch l := Location(s); l {
	case "":
		return DefaultLocation, nil
	case LocationMyHouse, LocationGirlfriendHouse:
		return l, nil
	case legacyLocationGirlfriendHouse:
		return LocationGirlfriendHouse, nil
	default:
		return "", ErrInvalidLocation
	}
}

// ClothingItem is a tracked piece of clothing.
type ClothingItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Type      string    `json:"type,omitempty"`
	Location  Location  `json:"location" validate:"required,oneof=my_house girlfriends_house"`
	LastMoved time.Time `json:"last_moved" validate:"required"`
}

// NewClothingItem builds an item at the default location, moved at now.
func NewClothingItem(name string, now time.Time) *ClothingItem {
	return &ClothingItem{
		Name:      name,
		Location:  DefaultLocation,
		LastMoved: now,
	}
}

package model

// PropertyEntity represents the property table entity. HostID is nullable:
// deleting a host detaches its properties instead of deleting them.
type PropertyEntity struct {
	ID            string  `db:"id" json:"id"`
	Title         string  `db:"title" json:"title"`
	Description   string  `db:"description" json:"description"`
	Location      string  `db:"location" json:"location"`
	PricePerNight float64 `db:"price_per_night" json:"pricePerNight"`
	BedroomCount  int     `db:"bedroom_count" json:"bedroomCount"`
	BathRoomCount int     `db:"bath_room_count" json:"bathRoomCount"`
	MaxGuestCount int     `db:"max_guest_count" json:"maxGuestCount"`
	Rating        float64 `db:"rating" json:"rating"`
	HostID        *string `db:"host_id" json:"hostId"`

	Amenities []AmenityEntity `db:"-" json:"amenities,omitempty"`
}

// PropertySummary is the projection embedded in review listings.
type PropertySummary struct {
	ID    string `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
}

// PropertyFilter for querying properties. Location and AmenityName are
// substring matches, PricePerNight is exact.
type PropertyFilter struct {
	Location      string
	PricePerNight *float64
	AmenityName   string
}

type PropertyCreateRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	PricePerNight float64 `json:"pricePerNight" validate:"required"`
	BedroomCount  int     `json:"bedroomCount" validate:"required"`
	BathRoomCount int     `json:"bathRoomCount" validate:"required"`
	MaxGuestCount int     `json:"maxGuestCount" validate:"required"`
	Rating        float64 `json:"rating" validate:"required"`
	HostID        string  `json:"hostId" validate:"required"`
}

package model

// AmenityEntity represents the amenity table entity
type AmenityEntity struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// AmenityFilter exists for interface symmetry; amenities are not filterable.
type AmenityFilter struct{}

type AmenityRequest struct {
	Name string `json:"name" validate:"required"`
}

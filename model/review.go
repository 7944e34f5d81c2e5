package model

// ReviewEntity represents the review table entity
type ReviewEntity struct {
	ID         string  `db:"id" json:"id"`
	UserID     string  `db:"user_id" json:"userId"`
	PropertyID string  `db:"property_id" json:"propertyId"`
	Rating     float64 `db:"rating" json:"rating"`
	Comment    string  `db:"comment" json:"comment"`
}

// ReviewUserSummary is the id/name projection embedded in review listings.
type ReviewUserSummary struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// ReviewDetail is the listing shape: the review with id/name of its user
// and id/title of its property.
type ReviewDetail struct {
	ReviewEntity
	User     ReviewUserSummary `db:"user" json:"user"`
	Property PropertySummary   `db:"property" json:"property"`
}

// ReviewFilter for querying reviews
type ReviewFilter struct {
	UserID     string
	PropertyID string
}

type ReviewCreateRequest struct {
	UserID     string  `json:"userId" validate:"required"`
	PropertyID string  `json:"propertyId" validate:"required"`
	Rating     float64 `json:"rating" validate:"required"`
	Comment    string  `json:"comment" validate:"required"`
}

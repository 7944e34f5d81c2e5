package model

import "time"

// BookingEntity represents the booking table entity
type BookingEntity struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"userId"`
	PropertyID     string    `db:"property_id" json:"propertyId"`
	CheckinDate    time.Time `db:"checkin_date" json:"checkinDate"`
	CheckoutDate   time.Time `db:"checkout_date" json:"checkoutDate"`
	NumberOfGuests int       `db:"number_of_guests" json:"numberOfGuests"`
	TotalPrice     float64   `db:"total_price" json:"totalPrice"`
	BookingStatus  string    `db:"booking_status" json:"bookingStatus"`
}

// BookingDetail is the listing shape: the booking with its property and a
// projection of the booking user.
type BookingDetail struct {
	BookingEntity
	Property PropertyEntity `db:"property" json:"property"`
	User     UserSummary    `db:"user" json:"user"`
}

// BookingFilter for querying bookings
type BookingFilter struct {
	UserID string
}

type BookingCreateRequest struct {
	UserID         string    `json:"userId" validate:"required"`
	PropertyID     string    `json:"propertyId" validate:"required"`
	CheckinDate    time.Time `json:"checkinDate" validate:"required"`
	CheckoutDate   time.Time `json:"checkoutDate" validate:"required"`
	NumberOfGuests int       `json:"numberOfGuests" validate:"required"`
	TotalPrice     float64   `json:"totalPrice" validate:"required"`
	BookingStatus  string    `json:"bookingStatus" validate:"required"`
}

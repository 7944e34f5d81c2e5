package booking

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/heystay/booking-api/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type BookingRepository interface {
	List(ctx context.Context, filter *model.BookingFilter) ([]model.BookingDetail, error)
	GetByID(ctx context.Context, id string) (*model.BookingEntity, error)
	Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.BookingEntity, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

func NewBookingRepository(conn *sqlx.DB) BookingRepository {
	return &SQL{conn: conn}
}

const (
	insertBookingQuery = `INSERT INTO booking (id, user_id, property_id, checkin_date, checkout_date, number_of_guests, total_price, booking_status) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	getBookingBase     = `SELECT id, user_id, property_id, checkin_date, checkout_date, number_of_guests, total_price, booking_status FROM booking WHERE true`

	// Listings join the related property and a name/email projection of the
	// booking user.
	listBookingBase = `SELECT
		b.id, b.user_id, b.property_id, b.checkin_date, b.checkout_date, b.number_of_guests, b.total_price, b.booking_status,
		p.id AS "property.id", p.title AS "property.title", p.description AS "property.description",
		p.location AS "property.location", p.price_per_night AS "property.price_per_night",
		p.bedroom_count AS "property.bedroom_count", p.bath_room_count AS "property.bath_room_count",
		p.max_guest_count AS "property.max_guest_count", p.rating AS "property.rating", p.host_id AS "property.host_id",
		u.id AS "user.id", u.name AS "user.name", u.email AS "user.email"
	FROM booking b
	JOIN property p ON p.id = b.property_id
	JOIN user u ON u.id = b.user_id
	WHERE true`
)

func (s *SQL) List(ctx context.Context, filter *model.BookingFilter) ([]model.BookingDetail, error) {
	query := listBookingBase
	args := make([]any, 0, 1)

	if filter != nil && filter.UserID != "" {
		query += " AND b.user_id = ?"
		args = append(args, filter.UserID)
	}

	bookings := []model.BookingDetail{}
	if err := s.conn.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.BookingEntity, error) {
	var entity model.BookingEntity
	if err := s.conn.QueryRowxContext(ctx, getBookingBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}

	_, err := s.conn.ExecContext(ctx, insertBookingQuery,
		data.ID, data.UserID, data.PropertyID, data.CheckinDate, data.CheckoutDate,
		data.NumberOfGuests, data.TotalPrice, data.BookingStatus)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, id string, fields map[string]any) (*model.BookingEntity, error) {
	if len(fields) > 0 {
		set := make([]string, 0, len(fields))
		args := make([]any, 0, len(fields)+1)
		for column, value := range fields {
			set = append(set, column+" = ?")
			args = append(args, value)
		}
		args = append(args, id)

		query := "UPDATE booking SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM booking WHERE id = ?", id)
	return err
}

// DeleteByUserID removes every booking owned by the user. Part of the user
// delete cascade.
func (s *SQL) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM booking WHERE user_id = ?", userID)
	return err
}

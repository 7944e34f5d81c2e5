package user

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

type UserRepository interface {
	List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error)
	GetByID(ctx context.Context, id string) (*model.UserEntity, error)
	GetByUsername(ctx context.Context, username string) (*model.UserEntity, error)
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.UserEntity, error)
	Delete(ctx context.Context, id string) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (id, username, password_hash, name, email, phone_number, profile_picture) VALUES (?, ?, ?, ?, ?, ?, ?)`
	getUserBase     = `SELECT id, username, password_hash, name, email, phone_number, profile_picture FROM user WHERE true`

	getBookingsByUsers = `SELECT id, user_id, property_id, checkin_date, checkout_date, number_of_guests, total_price, booking_status FROM booking WHERE user_id IN (?)`
	getReviewsByUsers  = `SELECT id, user_id, property_id, rating, comment FROM review WHERE user_id IN (?)`
)

func (s *SQL) List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter != nil && filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter != nil && filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	users := []model.UserEntity{}
	if err := s.conn.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}

	if err := s.attachRelations(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.UserEntity, error) {
	entity, err := s.getOne(ctx, getUserBase+" AND id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}

	single := []model.UserEntity{*entity}
	if err := s.attachRelations(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

func (s *SQL) GetByUsername(ctx context.Context, username string) (*model.UserEntity, error) {
	return s.getOne(ctx, getUserBase+" AND username = ?", username)
}

func (s *SQL) getOne(ctx context.Context, query string, arg any) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, arg).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}

	_, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.ID, data.Username, data.PasswordHash, data.Name, data.Email, data.PhoneNumber, data.ProfilePicture)
	if err != nil {
		return nil, err
	}

	data.Bookings = []model.BookingEntity{}
	data.Reviews = []model.ReviewEntity{}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, id string, fields map[string]any) (*model.UserEntity, error) {
	if len(fields) > 0 {
		set := make([]string, 0, len(fields))
		args := make([]any, 0, len(fields)+1)
		for column, value := range fields {
			set = append(set, column+" = ?")
			args = append(args, value)
		}
		args = append(args, id)

		query := "UPDATE user SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM user WHERE id = ?", id)
	return err
}

// attachRelations loads the bookings and reviews owned by the given users
// in two batch queries and distributes them per user.
func (s *SQL) attachRelations(ctx context.Context, users []model.UserEntity) error {
	for i := range users {
		users[i].Bookings = []model.BookingEntity{}
		users[i].Reviews = []model.ReviewEntity{}
	}
	if len(users) == 0 {
		return nil
	}

	ids := make([]string, 0, len(users))
	index := make(map[string]int, len(users))
	for i, u := range users {
		ids = append(ids, u.ID)
		index[u.ID] = i
	}

	query, args, err := sqlx.In(getBookingsByUsers, ids)
	if err != nil {
		return err
	}
	bookings := []model.BookingEntity{}
	if err := s.conn.SelectContext(ctx, &bookings, query, args...); err != nil {
		return err
	}
	for _, b := range bookings {
		i := index[b.UserID]
		users[i].Bookings = append(users[i].Bookings, b)
	}

	query, args, err = sqlx.In(getReviewsByUsers, ids)
	if err != nil {
		return err
	}
	reviews := []model.ReviewEntity{}
	if err := s.conn.SelectContext(ctx, &reviews, query, args...); err != nil {
		return err
	}
	for _, r := range reviews {
		i := index[r.UserID]
		users[i].Reviews = append(users[i].Reviews, r)
	}

	return nil
}

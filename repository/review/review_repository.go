package review

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

type ReviewRepository interface {
	List(ctx context.Context, filter *model.ReviewFilter) ([]model.ReviewDetail, error)
	GetByID(ctx context.Context, id string) (*model.ReviewEntity, error)
	Create(ctx context.Context, data *model.ReviewEntity) (*model.ReviewEntity, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.ReviewEntity, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

func NewReviewRepository(conn *sqlx.DB) ReviewRepository {
	return &SQL{conn: conn}
}

const (
	insertReviewQuery = `INSERT INTO review (id, user_id, property_id, rating, comment) VALUES (?, ?, ?, ?, ?)`
	getReviewBase     = `SELECT id, user_id, property_id, rating, comment FROM review WHERE true`

	listReviewBase = `SELECT
		r.id, r.user_id, r.property_id, r.rating, r.comment,
		u.id AS "user.id", u.name AS "user.name",
		p.id AS "property.id", p.title AS "property.title"
	FROM review r
	JOIN user u ON u.id = r.user_id
	JOIN property p ON p.id = r.property_id
	WHERE true`
)

func (s *SQL) List(ctx context.Context, filter *model.ReviewFilter) ([]model.ReviewDetail, error) {
	query := listReviewBase
	args := make([]any, 0, 2)

	if filter != nil && filter.UserID != "" {
		query += " AND r.user_id = ?"
		args = append(args, filter.UserID)
	}
	if filter != nil && filter.PropertyID != "" {
		query += " AND r.property_id = ?"
		args = append(args, filter.PropertyID)
	}

	reviews := []model.ReviewDetail{}
	if err := s.conn.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.ReviewEntity, error) {
	var entity model.ReviewEntity
	if err := s.conn.QueryRowxContext(ctx, getReviewBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ReviewEntity) (*model.ReviewEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}

	_, err := s.conn.ExecContext(ctx, insertReviewQuery,
		data.ID, data.UserID, data.PropertyID, data.Rating, data.Comment)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, id string, fields map[string]any) (*model.ReviewEntity, error) {
	if len(fields) > 0 {
		set := make([]string, 0, len(fields))
		args := make([]any, 0, len(fields)+1)
		for column, value := range fields {
			set = append(set, column+" = ?")
			args = append(args, value)
		}
		args = append(args, id)

		query := "UPDATE review SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM review WHERE id = ?", id)
	return err
}

// DeleteByUserID removes every review written by the user. Part of the user
// delete cascade.
func (s *SQL) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM review WHERE user_id = ?", userID)
	return err
}

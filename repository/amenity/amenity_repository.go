package amenity

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

type AmenityRepository interface {
	List(ctx context.Context, filter *model.AmenityFilter) ([]model.AmenityEntity, error)
	GetByID(ctx context.Context, id string) (*model.AmenityEntity, error)
	Create(ctx context.Context, data *model.AmenityEntity) (*model.AmenityEntity, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.AmenityEntity, error)
	Delete(ctx context.Context, id string) error
}

func NewAmenityRepository(conn *sqlx.DB) AmenityRepository {
	return &SQL{conn: conn}
}

const (
	insertAmenityQuery = `INSERT INTO amenity (id, name) VALUES (?, ?)`
	getAmenityBase     = `SELECT id, name FROM amenity WHERE true`
)

func (s *SQL) List(ctx context.Context, _ *model.AmenityFilter) ([]model.AmenityEntity, error) {
	amenities := []model.AmenityEntity{}
	if err := s.conn.SelectContext(ctx, &amenities, getAmenityBase); err != nil {
		return nil, err
	}
	return amenities, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.AmenityEntity, error) {
	var entity model.AmenityEntity
	if err := s.conn.QueryRowxContext(ctx, getAmenityBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.AmenityEntity) (*model.AmenityEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}

	if _, err := s.conn.ExecContext(ctx, insertAmenityQuery, data.ID, data.Name); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, id string, fields map[string]any) (*model.AmenityEntity, error) {
	if len(fields) > 0 {
		set := make([]string, 0, len(fields))
		args := make([]any, 0, len(fields)+1)
		for column, value := range fields {
			set = append(set, column+" = ?")
			args = append(args, value)
		}
		args = append(args, id)

		query := "UPDATE amenity SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM property_amenity WHERE amenity_id = ?", id); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx, "DELETE FROM amenity WHERE id = ?", id)
	return err
}

package host

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

type HostRepository interface {
	List(ctx context.Context, filter *model.HostFilter) ([]model.HostEntity, error)
	GetByID(ctx context.Context, id string) (*model.HostEntity, error)
	Create(ctx context.Context, data *model.HostEntity) (*model.HostEntity, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.HostEntity, error)
	Delete(ctx context.Context, id string) error
}

func NewHostRepository(conn *sqlx.DB) HostRepository {
	return &SQL{conn: conn}
}

const (
	insertHostQuery = `INSERT INTO host (id, username, password_hash, name, email, phone_number, profile_picture, about_me) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	getHostBase     = `SELECT id, username, password_hash, name, email, phone_number, profile_picture, about_me FROM host WHERE true`
)

func (s *SQL) List(ctx context.Context, filter *model.HostFilter) ([]model.HostEntity, error) {
	query := getHostBase
	args := make([]any, 0, 1)

	if filter != nil && filter.Name != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+filter.Name+"%")
	}

	hosts := []model.HostEntity{}
	if err := s.conn.SelectContext(ctx, &hosts, query, args...); err != nil {
		return nil, err
	}
	return hosts, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.HostEntity, error) {
	var entity model.HostEntity
	if err := s.conn.QueryRowxContext(ctx, getHostBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.HostEntity) (*model.HostEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}

	_, err := s.conn.ExecContext(ctx, insertHostQuery,
		data.ID, data.Username, data.PasswordHash, data.Name, data.Email, data.PhoneNumber, data.ProfilePicture, data.AboutMe)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, id string, fields map[string]any) (*model.HostEntity, error) {
	if len(fields) > 0 {
		set := make([]string, 0, len(fields))
		args := make([]any, 0, len(fields)+1)
		for column, value := range fields {
			set = append(set, column+" = ?")
			args = append(args, value)
		}
		args = append(args, id)

		query := "UPDATE host SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM host WHERE id = ?", id)
	return err
}

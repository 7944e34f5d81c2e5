package property

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

type PropertyRepository interface {
	List(ctx context.Context, filter *model.PropertyFilter) ([]model.PropertyEntity, error)
	GetByID(ctx context.Context, id string) (*model.PropertyEntity, error)
	Create(ctx context.Context, data *model.PropertyEntity) (*model.PropertyEntity, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.PropertyEntity, error)
	Delete(ctx context.Context, id string) error
	DetachHost(ctx context.Context, hostID string) error
}

func NewPropertyRepository(conn *sqlx.DB) PropertyRepository {
	return &SQL{conn: conn}
}

const (
	insertPropertyQuery = `INSERT INTO property (id, title, description, location, price_per_night, bedroom_count, bath_room_count, max_guest_count, rating, host_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getPropertyBase     = `SELECT id, title, description, location, price_per_night, bedroom_count, bath_room_count, max_guest_count, rating, host_id FROM property WHERE true`

	getAmenitiesByProperties = `SELECT pa.property_id AS property_id, a.id AS id, a.name AS name
		FROM property_amenity pa JOIN amenity a ON a.id = pa.amenity_id
		WHERE pa.property_id IN (?)`
)

func (s *SQL) List(ctx context.Context, filter *model.PropertyFilter) ([]model.PropertyEntity, error) {
	query := getPropertyBase
	args := make([]any, 0, 3)

	if filter != nil && filter.Location != "" {
		query += " AND location LIKE ?"
		args = append(args, "%"+filter.Location+"%")
	}
	if filter != nil && filter.PricePerNight != nil {
		query += " AND price_per_night = ?"
		args = append(args, *filter.PricePerNight)
	}
	if filter != nil && filter.AmenityName != "" {
		query += ` AND EXISTS (SELECT 1 FROM property_amenity pa JOIN amenity a ON a.id = pa.amenity_id
			WHERE pa.property_id = property.id AND a.name LIKE ?)`
		args = append(args, "%"+filter.AmenityName+"%")
	}

	properties := []model.PropertyEntity{}
	if err := s.conn.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, err
	}

	if err := s.attachAmenities(ctx, properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.PropertyEntity, error) {
	var entity model.PropertyEntity
	if err := s.conn.QueryRowxContext(ctx, getPropertyBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.PropertyEntity) (*model.PropertyEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}

	_, err := s.conn.ExecContext(ctx, insertPropertyQuery,
		data.ID, data.Title, data.Description, data.Location, data.PricePerNight,
		data.BedroomCount, data.BathRoomCount, data.MaxGuestCount, data.Rating, data.HostID)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Update(ctx context.Context, id string, fields map[string]any) (*model.PropertyEntity, error) {
	if len(fields) > 0 {
		set := make([]string, 0, len(fields))
		args := make([]any, 0, len(fields)+1)
		for column, value := range fields {
			set = append(set, column+" = ?")
			args = append(args, value)
		}
		args = append(args, id)

		query := "UPDATE property SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM property_amenity WHERE property_id = ?", id); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx, "DELETE FROM property WHERE id = ?", id)
	return err
}

// DetachHost clears host_id on every property owned by the host. Used when a
// host is deleted: properties survive their host.
func (s *SQL) DetachHost(ctx context.Context, hostID string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE property SET host_id = NULL WHERE host_id = ?", hostID)
	return err
}

type propertyAmenityRow struct {
	PropertyID string `db:"property_id"`
	ID         string `db:"id"`
	Name       string `db:"name"`
}

func (s *SQL) attachAmenities(ctx context.Context, properties []model.PropertyEntity) error {
	for i := range properties {
		properties[i].Amenities = []model.AmenityEntity{}
	}
	if len(properties) == 0 {
		return nil
	}

	ids := make([]string, 0, len(properties))
	index := make(map[string]int, len(properties))
	for i, p := range properties {
		ids = append(ids, p.ID)
		index[p.ID] = i
	}

	query, args, err := sqlx.In(getAmenitiesByProperties, ids)
	if err != nil {
		return err
	}
	rows := []propertyAmenityRow{}
	if err := s.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return err
	}
	for _, row := range rows {
		i := index[row.PropertyID]
		properties[i].Amenities = append(properties[i].Amenities, model.AmenityEntity{ID: row.ID, Name: row.Name})
	}

	return nil
}

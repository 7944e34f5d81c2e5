package resource_test

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/heystay/booking-api/application/resource"
	"github.com/heystay/booking-api/constant"
	hostmocks "github.com/heystay/booking-api/mocks/repository/host"
	propertymocks "github.com/heystay/booking-api/mocks/repository/property"
	redismocks "github.com/heystay/booking-api/mocks/repository/redis"
	"github.com/heystay/booking-api/model"
	redisrepo "github.com/heystay/booking-api/repository/redis"
	"github.com/heystay/booking-api/utils/telemetry"
	"github.com/stretchr/testify/mock"
)

func newPropertyApp(properties *propertymocks.PropertyRepository, hosts *hostmocks.HostRepository, cache redisrepo.Repository) resource.App {
	return resource.NewPropertyApp(properties, hosts, cache, time.Minute, telemetry.NewNoopSink())
}

const validPropertyBody = `{
	"title": "Beach Villa",
	"description": "A villa by the beach",
	"location": "Lagos",
	"pricePerNight": 120.5,
	"bedroomCount": 3,
	"bathRoomCount": 2,
	"maxGuestCount": 6,
	"rating": 4.5,
	"hostId": "host-1"
}`

func TestPropertyApp_Create(t *testing.T) {
	t.Run("success: host exists", func(t *testing.T) {
		properties := propertymocks.NewPropertyRepository(t)
		hosts := hostmocks.NewHostRepository(t)

		hosts.
			On("GetByID", mock.Anything, "host-1").
			Return(&model.HostEntity{ID: "host-1"}, nil).
			Once()
		properties.
			On("Create", mock.Anything, mock.MatchedBy(func(ent *model.PropertyEntity) bool {
				return ent.Title == "Beach Villa" && ent.HostID != nil && *ent.HostID == "host-1"
			})).
			Return(&model.PropertyEntity{ID: "prop-1", Title: "Beach Villa"}, nil).
			Once()

		app := newPropertyApp(properties, hosts, nil)
		got, err := app.Create(context.Background(), []byte(validPropertyBody))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.(*model.PropertyEntity).ID != "prop-1" {
			t.Fatalf("Create() = %+v", got)
		}
	})

	t.Run("error: host does not exist", func(t *testing.T) {
		properties := propertymocks.NewPropertyRepository(t)
		hosts := hostmocks.NewHostRepository(t)
		hosts.
			On("GetByID", mock.Anything, "host-1").
			Return(nil, nil).
			Once()

		app := newPropertyApp(properties, hosts, nil)
		_, err := app.Create(context.Background(), []byte(validPropertyBody))
		assertErrorCode(t, err, constant.ErrInvalidRequest)
		if err.Error() != "Invalid hostId: host does not exist" {
			t.Fatalf("error message = %q", err.Error())
		}
	})

	t.Run("error: missing required fields", func(t *testing.T) {
		app := newPropertyApp(propertymocks.NewPropertyRepository(t), hostmocks.NewHostRepository(t), nil)
		_, err := app.Create(context.Background(), []byte(`{"title":"Beach Villa"}`))
		assertErrorCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestPropertyApp_Delete(t *testing.T) {
	t.Run("success: returns the confirmation message", func(t *testing.T) {
		properties := propertymocks.NewPropertyRepository(t)
		properties.
			On("GetByID", mock.Anything, "prop-1").
			Return(&model.PropertyEntity{ID: "prop-1"}, nil).
			Once()
		properties.
			On("Delete", mock.Anything, "prop-1").
			Return(nil).
			Once()

		app := newPropertyApp(properties, hostmocks.NewHostRepository(t), nil)
		msg, err := app.Delete(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if msg != "Property deleted successfully" {
			t.Fatalf("Delete() message = %q", msg)
		}
	})

	t.Run("error: property not found", func(t *testing.T) {
		properties := propertymocks.NewPropertyRepository(t)
		properties.
			On("GetByID", mock.Anything, "missing").
			Return(nil, nil).
			Once()

		app := newPropertyApp(properties, hostmocks.NewHostRepository(t), nil)
		_, err := app.Delete(context.Background(), "missing")
		assertErrorCode(t, err, constant.ErrNotFound)
		if err.Error() != "Property not found" {
			t.Fatalf("error message = %q", err.Error())
		}
	})
}

func TestPropertyApp_List(t *testing.T) {
	t.Run("success: price and amenity filters are parsed", func(t *testing.T) {
		properties := propertymocks.NewPropertyRepository(t)
		properties.
			On("List", mock.Anything, mock.MatchedBy(func(filter *model.PropertyFilter) bool {
				return filter.Location == "Lagos" &&
					filter.AmenityName == "wifi" &&
					filter.PricePerNight != nil && *filter.PricePerNight == 120.5
			})).
			Return([]model.PropertyEntity{{ID: "prop-1"}}, nil).
			Once()

		app := newPropertyApp(properties, hostmocks.NewHostRepository(t), nil)
		_, err := app.List(context.Background(), url.Values{
			"location":      {"Lagos"},
			"pricePerNight": {"120.5"},
			"amenities":     {"wifi"},
		})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
	})

	t.Run("success: unparseable price is ignored", func(t *testing.T) {
		properties := propertymocks.NewPropertyRepository(t)
		properties.
			On("List", mock.Anything, mock.MatchedBy(func(filter *model.PropertyFilter) bool {
				return filter.PricePerNight == nil
			})).
			Return([]model.PropertyEntity{}, nil).
			Once()

		app := newPropertyApp(properties, hostmocks.NewHostRepository(t), nil)
		if _, err := app.List(context.Background(), url.Values{"pricePerNight": {"cheap"}}); err != nil {
			t.Fatalf("List() error = %v", err)
		}
	})
}

func TestPropertyApp_GetCaching(t *testing.T) {
	t.Run("cache hit skips the store", func(t *testing.T) {
		cached, _ := json.Marshal(&model.PropertyEntity{ID: "prop-1", Title: "Beach Villa"})
		cache := redismocks.NewRepository(t)
		cache.
			On("GetEntity", mock.Anything, "property", "prop-1").
			Return(cached, nil).
			Once()

		app := newPropertyApp(propertymocks.NewPropertyRepository(t), hostmocks.NewHostRepository(t), cache)
		got, err := app.Get(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.(*model.PropertyEntity).Title != "Beach Villa" {
			t.Fatalf("Get() = %+v", got)
		}
	})

	t.Run("cache miss falls through and stores the entity", func(t *testing.T) {
		cache := redismocks.NewRepository(t)
		cache.
			On("GetEntity", mock.Anything, "property", "prop-1").
			Return(nil, nil).
			Once()
		cache.
			On("SetEntity", mock.Anything, "property", "prop-1", mock.AnythingOfType("[]uint8"), time.Minute).
			Return(nil).
			Once()

		properties := propertymocks.NewPropertyRepository(t)
		properties.
			On("GetByID", mock.Anything, "prop-1").
			Return(&model.PropertyEntity{ID: "prop-1", Title: "Beach Villa"}, nil).
			Once()

		app := newPropertyApp(properties, hostmocks.NewHostRepository(t), cache)
		if _, err := app.Get(context.Background(), "prop-1"); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	})

	t.Run("update invalidates the cached entity", func(t *testing.T) {
		cache := redismocks.NewRepository(t)
		cache.
			On("InvalidateEntity", mock.Anything, "property", "prop-1").
			Return(nil).
			Once()

		properties := propertymocks.NewPropertyRepository(t)
		properties.
			On("GetByID", mock.Anything, "prop-1").
			Return(&model.PropertyEntity{ID: "prop-1"}, nil).
			Once()
		properties.
			On("Update", mock.Anything, "prop-1", map[string]interface{}{"title": "Renamed"}).
			Return(&model.PropertyEntity{ID: "prop-1", Title: "Renamed"}, nil).
			Once()

		app := newPropertyApp(properties, hostmocks.NewHostRepository(t), cache)
		if _, err := app.Update(context.Background(), "prop-1", []byte(`{"title":"Renamed"}`)); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})
}

package resource_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/heystay/booking-api/application/resource"
	"github.com/heystay/booking-api/constant"
	hostmocks "github.com/heystay/booking-api/mocks/repository/host"
	propertymocks "github.com/heystay/booking-api/mocks/repository/property"
	"github.com/heystay/booking-api/model"
	"github.com/heystay/booking-api/utils/telemetry"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newHostApp(hosts *hostmocks.HostRepository, properties *propertymocks.PropertyRepository) resource.App {
	return resource.NewHostApp(hosts, properties, nil, time.Minute, telemetry.NewNoopSink())
}

const validHostBody = `{
	"username": "hostjane",
	"password": "password123",
	"name": "Jane Host",
	"email": "jane.host@example.com",
	"phoneNumber": "555-0201",
	"profilePicture": "https://example.com/host.png",
	"aboutMe": "I host beach villas."
}`

func TestHostApp_Create(t *testing.T) {
	t.Run("success: password is stored hashed", func(t *testing.T) {
		hosts := hostmocks.NewHostRepository(t)
		hosts.
			On("Create", mock.Anything, mock.MatchedBy(func(ent *model.HostEntity) bool {
				if ent.Username != "hostjane" || ent.AboutMe != "I host beach villas." {
					return false
				}
				return bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
			})).
			Return(&model.HostEntity{ID: "host-1", Username: "hostjane"}, nil).
			Once()

		app := newHostApp(hosts, propertymocks.NewPropertyRepository(t))
		got, err := app.Create(context.Background(), []byte(validHostBody))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.(*model.HostEntity).ID != "host-1" {
			t.Fatalf("Create() = %+v", got)
		}
	})

	t.Run("error: missing required field", func(t *testing.T) {
		app := newHostApp(hostmocks.NewHostRepository(t), propertymocks.NewPropertyRepository(t))
		_, err := app.Create(context.Background(), []byte(`{"username":"hostjane","password":"password123"}`))
		assertErrorCode(t, err, constant.ErrInvalidRequest)
		want := "Missing required fields. Please provide username, password, name, email, phoneNumber, profilePicture, and aboutMe."
		if err.Error() != want {
			t.Fatalf("error message = %q, want %q", err.Error(), want)
		}
	})

	t.Run("error: duplicate username or email", func(t *testing.T) {
		hosts := hostmocks.NewHostRepository(t)
		hosts.
			On("Create", mock.Anything, mock.AnythingOfType("*model.HostEntity")).
			Return(nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}).
			Once()

		app := newHostApp(hosts, propertymocks.NewPropertyRepository(t))
		_, err := app.Create(context.Background(), []byte(validHostBody))
		assertErrorCode(t, err, constant.ErrDuplicateField)
	})
}

func TestHostApp_Update(t *testing.T) {
	t.Run("success: full field set maps to columns", func(t *testing.T) {
		hosts := hostmocks.NewHostRepository(t)
		hosts.
			On("GetByID", mock.Anything, "host-1").
			Return(&model.HostEntity{ID: "host-1"}, nil).
			Once()
		hosts.
			On("Update", mock.Anything, "host-1", map[string]interface{}{
				"username":        "hostjane",
				"name":            "Jane H.",
				"email":           "jane.host@example.com",
				"phone_number":    "555-0202",
				"profile_picture": "https://example.com/host2.png",
				"about_me":        "Now hosting cabins too.",
			}).
			Return(&model.HostEntity{ID: "host-1", Name: "Jane H."}, nil).
			Once()

		app := newHostApp(hosts, propertymocks.NewPropertyRepository(t))
		body := `{"username":"hostjane","name":"Jane H.","email":"jane.host@example.com","phoneNumber":"555-0202","profilePicture":"https://example.com/host2.png","aboutMe":"Now hosting cabins too."}`
		got, err := app.Update(context.Background(), "host-1", []byte(body))
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.(*model.HostEntity).Name != "Jane H." {
			t.Fatalf("Update() = %+v", got)
		}
	})

	t.Run("error: missing field on update", func(t *testing.T) {
		hosts := hostmocks.NewHostRepository(t)
		hosts.
			On("GetByID", mock.Anything, "host-1").
			Return(&model.HostEntity{ID: "host-1"}, nil).
			Once()

		app := newHostApp(hosts, propertymocks.NewPropertyRepository(t))
		_, err := app.Update(context.Background(), "host-1", []byte(`{"username":"hostjane"}`))
		assertErrorCode(t, err, constant.ErrInvalidRequest)
		want := "Missing required fields. Please provide username, name, email, phoneNumber, profilePicture, and aboutMe for update."
		if err.Error() != want {
			t.Fatalf("error message = %q, want %q", err.Error(), want)
		}
	})

	t.Run("error: host not found", func(t *testing.T) {
		hosts := hostmocks.NewHostRepository(t)
		hosts.
			On("GetByID", mock.Anything, "missing").
			Return(nil, nil).
			Once()

		app := newHostApp(hosts, propertymocks.NewPropertyRepository(t))
		_, err := app.Update(context.Background(), "missing", []byte(`{}`))
		assertErrorCode(t, err, constant.ErrNotFound)
		if err.Error() != "Host not found" {
			t.Fatalf("error message = %q", err.Error())
		}
	})
}

func TestHostApp_Delete(t *testing.T) {
	t.Run("success: properties are detached before the host is removed", func(t *testing.T) {
		hosts := hostmocks.NewHostRepository(t)
		properties := propertymocks.NewPropertyRepository(t)

		var order []string
		hosts.
			On("GetByID", mock.Anything, "host-1").
			Return(&model.HostEntity{ID: "host-1"}, nil).
			Once()
		properties.
			On("DetachHost", mock.Anything, "host-1").
			Run(func(mock.Arguments) { order = append(order, "detach") }).
			Return(nil).
			Once()
		hosts.
			On("Delete", mock.Anything, "host-1").
			Run(func(mock.Arguments) { order = append(order, "host") }).
			Return(nil).
			Once()

		app := newHostApp(hosts, properties)
		if _, err := app.Delete(context.Background(), "host-1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		want := []string{"detach", "host"}
		if len(order) != len(want) {
			t.Fatalf("cascade calls = %v, want %v", order, want)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Fatalf("cascade order = %v, want %v", order, want)
			}
		}
	})

	t.Run("error: host not found", func(t *testing.T) {
		hosts := hostmocks.NewHostRepository(t)
		hosts.
			On("GetByID", mock.Anything, "missing").
			Return(nil, nil).
			Once()

		app := newHostApp(hosts, propertymocks.NewPropertyRepository(t))
		_, err := app.Delete(context.Background(), "missing")
		assertErrorCode(t, err, constant.ErrNotFound)
	})

	t.Run("error: detach failure stops the delete", func(t *testing.T) {
		hosts := hostmocks.NewHostRepository(t)
		properties := propertymocks.NewPropertyRepository(t)
		hosts.
			On("GetByID", mock.Anything, "host-1").
			Return(&model.HostEntity{ID: "host-1"}, nil).
			Once()
		properties.
			On("DetachHost", mock.Anything, "host-1").
			Return(errors.New("db error")).
			Once()

		app := newHostApp(hosts, properties)
		_, err := app.Delete(context.Background(), "host-1")
		assertErrorCode(t, err, constant.ErrInternal)
	})
}

func TestHostApp_List(t *testing.T) {
	t.Run("success: name query becomes the filter", func(t *testing.T) {
		hosts := hostmocks.NewHostRepository(t)
		hosts.
			On("List", mock.Anything, &model.HostFilter{Name: "Jane"}).
			Return([]model.HostEntity{{ID: "host-1", Name: "Jane Host"}}, nil).
			Once()

		app := newHostApp(hosts, propertymocks.NewPropertyRepository(t))
		got, err := app.List(context.Background(), url.Values{"name": {"Jane"}})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if items := got.([]model.HostEntity); len(items) != 1 || items[0].Name != "Jane Host" {
			t.Fatalf("List() = %+v", got)
		}
	})
}

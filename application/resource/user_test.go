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
	bookingmocks "github.com/heystay/booking-api/mocks/repository/booking"
	reviewmocks "github.com/heystay/booking-api/mocks/repository/review"
	usermocks "github.com/heystay/booking-api/mocks/repository/user"
	"github.com/heystay/booking-api/model"
	cerr "github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/telemetry"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func assertErrorCode(t *testing.T, err error, errType constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errType] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errType])
	}
}

func newUserApp(users *usermocks.UserRepository, reviews *reviewmocks.ReviewRepository, bookings *bookingmocks.BookingRepository) resource.App {
	return resource.NewUserApp(users, reviews, bookings, nil, time.Minute, telemetry.NewNoopSink())
}

func TestUserApp_Create(t *testing.T) {
	type fields struct {
		users    *usermocks.UserRepository
		reviews  *reviewmocks.ReviewRepository
		bookings *bookingmocks.BookingRepository
	}
	tests := []struct {
		name     string
		fields   fields
		body     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		errMsg   string
	}{
		{
			name: "success: password is stored hashed",
			fields: fields{
				users:    usermocks.NewUserRepository(t),
				reviews:  reviewmocks.NewReviewRepository(t),
				bookings: bookingmocks.NewBookingRepository(t),
			},
			body: `{"username":"janedoe","password":"password123","name":"Jane Doe","email":"jane@example.com","phoneNumber":"555-0101","profilePicture":"https://example.com/jane.png"}`,
			mockCall: func(f fields) {
				f.users.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						if ent.Username != "janedoe" || ent.Email != "jane@example.com" {
							return false
						}
						// never the plaintext password
						return bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
					})).
					Return(&model.UserEntity{
						ID:       "user-1",
						Username: "janedoe",
						Email:    "jane@example.com",
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: missing required field",
			fields: fields{
				users:    usermocks.NewUserRepository(t),
				reviews:  reviewmocks.NewReviewRepository(t),
				bookings: bookingmocks.NewBookingRepository(t),
			},
			body:    `{"username":"janedoe","password":"password123"}`,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Missing required fields. Please provide username, password, name, email, phoneNumber, and profilePicture.",
		},
		{
			name: "error: malformed body",
			fields: fields{
				users:    usermocks.NewUserRepository(t),
				reviews:  reviewmocks.NewReviewRepository(t),
				bookings: bookingmocks.NewBookingRepository(t),
			},
			body:    `{not json`,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: duplicate username or email",
			fields: fields{
				users:    usermocks.NewUserRepository(t),
				reviews:  reviewmocks.NewReviewRepository(t),
				bookings: bookingmocks.NewBookingRepository(t),
			},
			body: `{"username":"janedoe","password":"password123","name":"Jane Doe","email":"jane@example.com","phoneNumber":"555-0101","profilePicture":"https://example.com/jane.png"}`,
			mockCall: func(f fields) {
				f.users.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateField,
			errMsg:  "Username or email already exists. Please choose a different one.",
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				users:    usermocks.NewUserRepository(t),
				reviews:  reviewmocks.NewReviewRepository(t),
				bookings: bookingmocks.NewBookingRepository(t),
			},
			body: `{"username":"janedoe","password":"password123","name":"Jane Doe","email":"jane@example.com","phoneNumber":"555-0101","profilePicture":"https://example.com/jane.png"}`,
			mockCall: func(f fields) {
				f.users.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
			errMsg:  "An error occurred while creating the user",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := newUserApp(tt.fields.users, tt.fields.reviews, tt.fields.bookings)

			got, err := app.Create(context.Background(), []byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrorCode(t, err, tt.errCode)
				if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Fatalf("error message = %q, want %q", err.Error(), tt.errMsg)
				}
				return
			}

			created, ok := got.(*model.UserEntity)
			if !ok {
				t.Fatalf("Create() returned %T, want *model.UserEntity", got)
			}
			if created.ID == "" {
				t.Fatal("Create() entity should carry an id")
			}
		})
	}
}

func TestUserApp_Get(t *testing.T) {
	t.Run("success: returns the entity", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("GetByID", mock.Anything, "user-1").
			Return(&model.UserEntity{ID: "user-1", Username: "janedoe"}, nil).
			Once()

		app := newUserApp(users, reviewmocks.NewReviewRepository(t), bookingmocks.NewBookingRepository(t))
		got, err := app.Get(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.(*model.UserEntity).Username != "janedoe" {
			t.Fatalf("Get() = %+v, want janedoe", got)
		}
	})

	t.Run("error: user not found", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("GetByID", mock.Anything, "missing").
			Return(nil, nil).
			Once()

		app := newUserApp(users, reviewmocks.NewReviewRepository(t), bookingmocks.NewBookingRepository(t))
		_, err := app.Get(context.Background(), "missing")
		assertErrorCode(t, err, constant.ErrNotFound)
		if err.Error() != "User not found" {
			t.Fatalf("error message = %q, want %q", err.Error(), "User not found")
		}
	})
}

func TestUserApp_Update(t *testing.T) {
	t.Run("success: full field set maps to columns", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("GetByID", mock.Anything, "user-1").
			Return(&model.UserEntity{ID: "user-1"}, nil).
			Once()
		users.
			On("Update", mock.Anything, "user-1", map[string]interface{}{
				"username":        "janedoe",
				"name":            "Jane D.",
				"email":           "jane@example.com",
				"phone_number":    "555-0102",
				"profile_picture": "https://example.com/jane2.png",
			}).
			Return(&model.UserEntity{ID: "user-1", Name: "Jane D."}, nil).
			Once()

		app := newUserApp(users, reviewmocks.NewReviewRepository(t), bookingmocks.NewBookingRepository(t))
		body := `{"username":"janedoe","name":"Jane D.","email":"jane@example.com","phoneNumber":"555-0102","profilePicture":"https://example.com/jane2.png"}`
		got, err := app.Update(context.Background(), "user-1", []byte(body))
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.(*model.UserEntity).Name != "Jane D." {
			t.Fatalf("Update() = %+v", got)
		}
	})

	t.Run("error: missing field on update", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("GetByID", mock.Anything, "user-1").
			Return(&model.UserEntity{ID: "user-1"}, nil).
			Once()

		app := newUserApp(users, reviewmocks.NewReviewRepository(t), bookingmocks.NewBookingRepository(t))
		_, err := app.Update(context.Background(), "user-1", []byte(`{"username":"janedoe"}`))
		assertErrorCode(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: user not found", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("GetByID", mock.Anything, "missing").
			Return(nil, nil).
			Once()

		app := newUserApp(users, reviewmocks.NewReviewRepository(t), bookingmocks.NewBookingRepository(t))
		_, err := app.Update(context.Background(), "missing", []byte(`{}`))
		assertErrorCode(t, err, constant.ErrNotFound)
	})
}

func TestUserApp_Delete(t *testing.T) {
	t.Run("success: reviews and bookings are removed before the user", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		reviews := reviewmocks.NewReviewRepository(t)
		bookings := bookingmocks.NewBookingRepository(t)

		var order []string
		users.
			On("GetByID", mock.Anything, "user-1").
			Return(&model.UserEntity{ID: "user-1"}, nil).
			Once()
		reviews.
			On("DeleteByUserID", mock.Anything, "user-1").
			Run(func(mock.Arguments) { order = append(order, "reviews") }).
			Return(nil).
			Once()
		bookings.
			On("DeleteByUserID", mock.Anything, "user-1").
			Run(func(mock.Arguments) { order = append(order, "bookings") }).
			Return(nil).
			Once()
		users.
			On("Delete", mock.Anything, "user-1").
			Run(func(mock.Arguments) { order = append(order, "user") }).
			Return(nil).
			Once()

		app := newUserApp(users, reviews, bookings)
		if _, err := app.Delete(context.Background(), "user-1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		want := []string{"reviews", "bookings", "user"}
		if len(order) != len(want) {
			t.Fatalf("cascade calls = %v, want %v", order, want)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Fatalf("cascade order = %v, want %v", order, want)
			}
		}
	})

	t.Run("error: user not found", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("GetByID", mock.Anything, "missing").
			Return(nil, nil).
			Once()

		app := newUserApp(users, reviewmocks.NewReviewRepository(t), bookingmocks.NewBookingRepository(t))
		_, err := app.Delete(context.Background(), "missing")
		assertErrorCode(t, err, constant.ErrNotFound)
	})

	t.Run("error: cascade failure stops the delete", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		reviews := reviewmocks.NewReviewRepository(t)
		users.
			On("GetByID", mock.Anything, "user-1").
			Return(&model.UserEntity{ID: "user-1"}, nil).
			Once()
		reviews.
			On("DeleteByUserID", mock.Anything, "user-1").
			Return(errors.New("db error")).
			Once()

		app := newUserApp(users, reviews, bookingmocks.NewBookingRepository(t))
		_, err := app.Delete(context.Background(), "user-1")
		assertErrorCode(t, err, constant.ErrInternal)
	})
}

func TestUserApp_List(t *testing.T) {
	t.Run("success: query parameters become the filter", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("List", mock.Anything, &model.UserFilter{Username: "janedoe", Email: "jane@example.com"}).
			Return([]model.UserEntity{{ID: "user-1", Username: "janedoe"}}, nil).
			Once()

		app := newUserApp(users, reviewmocks.NewReviewRepository(t), bookingmocks.NewBookingRepository(t))
		got, err := app.List(context.Background(), url.Values{
			"username": {"janedoe"},
			"email":    {"jane@example.com"},
		})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if items := got.([]model.UserEntity); len(items) != 1 || items[0].Username != "janedoe" {
			t.Fatalf("List() = %+v", got)
		}
	})

	t.Run("error: repository failure is sanitized", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("List", mock.Anything, mock.AnythingOfType("*model.UserFilter")).
			Return(nil, errors.New("db error")).
			Once()

		app := newUserApp(users, reviewmocks.NewReviewRepository(t), bookingmocks.NewBookingRepository(t))
		_, err := app.List(context.Background(), url.Values{})
		assertErrorCode(t, err, constant.ErrInternal)
		if err.Error() != "An error occurred while fetching users" {
			t.Fatalf("error message = %q", err.Error())
		}
	})
}

package resource_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/heystay/booking-api/application/resource"
	"github.com/heystay/booking-api/constant"
	bookingmocks "github.com/heystay/booking-api/mocks/repository/booking"
	propertymocks "github.com/heystay/booking-api/mocks/repository/property"
	usermocks "github.com/heystay/booking-api/mocks/repository/user"
	"github.com/heystay/booking-api/model"
	"github.com/heystay/booking-api/utils/telemetry"
	"github.com/stretchr/testify/mock"
)

func newBookingApp(bookings *bookingmocks.BookingRepository, users *usermocks.UserRepository, properties *propertymocks.PropertyRepository) resource.App {
	return resource.NewBookingApp(bookings, users, properties, nil, time.Minute, telemetry.NewNoopSink())
}

const validBookingBody = `{
	"userId": "user-1",
	"propertyId": "prop-1",
	"checkinDate": "2026-09-01T00:00:00Z",
	"checkoutDate": "2026-09-05T00:00:00Z",
	"numberOfGuests": 2,
	"totalPrice": 480.5,
	"bookingStatus": "confirmed"
}`

func TestBookingApp_Create(t *testing.T) {
	type fields struct {
		bookings   *bookingmocks.BookingRepository
		users      *usermocks.UserRepository
		properties *propertymocks.PropertyRepository
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
			name: "success: user and property exist",
			fields: fields{
				bookings:   bookingmocks.NewBookingRepository(t),
				users:      usermocks.NewUserRepository(t),
				properties: propertymocks.NewPropertyRepository(t),
			},
			body: validBookingBody,
			mockCall: func(f fields) {
				f.users.
					On("GetByID", mock.Anything, "user-1").
					Return(&model.UserEntity{ID: "user-1"}, nil).
					Once()
				f.properties.
					On("GetByID", mock.Anything, "prop-1").
					Return(&model.PropertyEntity{ID: "prop-1"}, nil).
					Once()
				f.bookings.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.BookingEntity) bool {
						return ent.UserID == "user-1" &&
							ent.PropertyID == "prop-1" &&
							ent.NumberOfGuests == 2 &&
							ent.BookingStatus == "confirmed"
					})).
					Return(&model.BookingEntity{ID: "booking-1", UserID: "user-1"}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: user does not exist",
			fields: fields{
				bookings:   bookingmocks.NewBookingRepository(t),
				users:      usermocks.NewUserRepository(t),
				properties: propertymocks.NewPropertyRepository(t),
			},
			body: validBookingBody,
			mockCall: func(f fields) {
				f.users.
					On("GetByID", mock.Anything, "user-1").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Invalid userId: user does not exist",
		},
		{
			name: "error: property does not exist",
			fields: fields{
				bookings:   bookingmocks.NewBookingRepository(t),
				users:      usermocks.NewUserRepository(t),
				properties: propertymocks.NewPropertyRepository(t),
			},
			body: validBookingBody,
			mockCall: func(f fields) {
				f.users.
					On("GetByID", mock.Anything, "user-1").
					Return(&model.UserEntity{ID: "user-1"}, nil).
					Once()
				f.properties.
					On("GetByID", mock.Anything, "prop-1").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Invalid propertyId: property does not exist",
		},
		{
			name: "error: relation check fails with repository error",
			fields: fields{
				bookings:   bookingmocks.NewBookingRepository(t),
				users:      usermocks.NewUserRepository(t),
				properties: propertymocks.NewPropertyRepository(t),
			},
			body: validBookingBody,
			mockCall: func(f fields) {
				f.users.
					On("GetByID", mock.Anything, "user-1").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: missing required fields",
			fields: fields{
				bookings:   bookingmocks.NewBookingRepository(t),
				users:      usermocks.NewUserRepository(t),
				properties: propertymocks.NewPropertyRepository(t),
			},
			body:    `{"userId":"user-1"}`,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Missing required fields. Please provide userId, propertyId, checkinDate, checkoutDate, numberOfGuests, totalPrice, and bookingStatus.",
		},
		{
			name: "error: date without a time component",
			fields: fields{
				bookings:   bookingmocks.NewBookingRepository(t),
				users:      usermocks.NewUserRepository(t),
				properties: propertymocks.NewPropertyRepository(t),
			},
			body: `{
				"userId": "user-1",
				"propertyId": "prop-1",
				"checkinDate": "2026-09-01",
				"checkoutDate": "2026-09-05T00:00:00Z",
				"numberOfGuests": 2,
				"totalPrice": 480.5,
				"bookingStatus": "confirmed"
			}`,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			errMsg:  "Invalid date format. checkinDate and checkoutDate must be RFC 3339 timestamps.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := newBookingApp(tt.fields.bookings, tt.fields.users, tt.fields.properties)

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

			if got.(*model.BookingEntity).ID == "" {
				t.Fatal("Create() entity should carry an id")
			}
		})
	}
}

func TestBookingApp_Update(t *testing.T) {
	t.Run("success: partial body with date strings", func(t *testing.T) {
		bookings := bookingmocks.NewBookingRepository(t)
		bookings.
			On("GetByID", mock.Anything, "booking-1").
			Return(&model.BookingEntity{ID: "booking-1"}, nil).
			Once()
		bookings.
			On("Update", mock.Anything, "booking-1", mock.MatchedBy(func(fields map[string]interface{}) bool {
				checkin, ok := fields["checkin_date"].(time.Time)
				if !ok || !checkin.Equal(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)) {
					return false
				}
				// unknown keys are dropped, known ones renamed
				_, hasUnknown := fields["not_a_column"]
				return fields["booking_status"] == "cancelled" && !hasUnknown
			})).
			Return(&model.BookingEntity{ID: "booking-1", BookingStatus: "cancelled"}, nil).
			Once()

		app := newBookingApp(bookings, usermocks.NewUserRepository(t), propertymocks.NewPropertyRepository(t))
		body := `{"checkinDate":"2026-09-02T00:00:00Z","bookingStatus":"cancelled","notAColumn":"ignored"}`
		got, err := app.Update(context.Background(), "booking-1", []byte(body))
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.(*model.BookingEntity).BookingStatus != "cancelled" {
			t.Fatalf("Update() = %+v", got)
		}
	})

	t.Run("error: unparseable date string", func(t *testing.T) {
		bookings := bookingmocks.NewBookingRepository(t)
		bookings.
			On("GetByID", mock.Anything, "booking-1").
			Return(&model.BookingEntity{ID: "booking-1"}, nil).
			Once()

		app := newBookingApp(bookings, usermocks.NewUserRepository(t), propertymocks.NewPropertyRepository(t))
		_, err := app.Update(context.Background(), "booking-1", []byte(`{"checkinDate":"tomorrow"}`))
		assertErrorCode(t, err, constant.ErrInvalidRequest)
		if err.Error() != "Invalid date format. checkinDate and checkoutDate must be RFC 3339 timestamps." {
			t.Fatalf("error message = %q", err.Error())
		}
	})

	t.Run("error: booking not found", func(t *testing.T) {
		bookings := bookingmocks.NewBookingRepository(t)
		bookings.
			On("GetByID", mock.Anything, "missing").
			Return(nil, nil).
			Once()

		app := newBookingApp(bookings, usermocks.NewUserRepository(t), propertymocks.NewPropertyRepository(t))
		_, err := app.Update(context.Background(), "missing", []byte(`{}`))
		assertErrorCode(t, err, constant.ErrNotFound)
		if err.Error() != "Booking not found" {
			t.Fatalf("error message = %q", err.Error())
		}
	})
}

func TestBookingApp_List(t *testing.T) {
	t.Run("success: userId query narrows the listing", func(t *testing.T) {
		bookings := bookingmocks.NewBookingRepository(t)
		bookings.
			On("List", mock.Anything, &model.BookingFilter{UserID: "user-1"}).
			Return([]model.BookingDetail{
				{
					BookingEntity: model.BookingEntity{ID: "booking-1", UserID: "user-1"},
					User:          model.UserSummary{ID: "user-1", Name: "Jane Doe"},
				},
			}, nil).
			Once()

		app := newBookingApp(bookings, usermocks.NewUserRepository(t), propertymocks.NewPropertyRepository(t))
		got, err := app.List(context.Background(), url.Values{"userId": {"user-1"}})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		items := got.([]model.BookingDetail)
		if len(items) != 1 || items[0].User.Name != "Jane Doe" {
			t.Fatalf("List() = %+v", got)
		}
	})
}

package resource

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/url"
	"time"

	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/model"
	bookingrepo "github.com/heystay/booking-api/repository/booking"
	propertyrepo "github.com/heystay/booking-api/repository/property"
	redisrepo "github.com/heystay/booking-api/repository/redis"
	userrepo "github.com/heystay/booking-api/repository/user"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/telemetry"
	validatorx "github.com/heystay/booking-api/utils/validator"
)

const (
	bookingCreateFieldsMsg = "Missing required fields. Please provide userId, propertyId, checkinDate, checkoutDate, numberOfGuests, totalPrice, and bookingStatus."
	bookingDateFormatMsg   = "Invalid date format. checkinDate and checkoutDate must be RFC 3339 timestamps."
)

var bookingColumns = map[string]string{
	"userId":         "user_id",
	"propertyId":     "property_id",
	"checkinDate":    "checkin_date",
	"checkoutDate":   "checkout_date",
	"numberOfGuests": "number_of_guests",
	"totalPrice":     "total_price",
	"bookingStatus":  "booking_status",
}

// NewBookingApp builds the booking resource. Creation connects the booking
// to an existing user and property.
func NewBookingApp(
	bookings bookingrepo.BookingRepository,
	users userrepo.UserRepository,
	properties propertyrepo.PropertyRepository,
	cache redisrepo.Repository,
	cacheTTL time.Duration,
	sink telemetry.Sink,
) App {
	desc := Descriptor[model.BookingEntity, model.BookingDetail, model.BookingFilter]{
		Name:   "Booking",
		Plural: "bookings",
		ParseFilter: func(query url.Values) *model.BookingFilter {
			return &model.BookingFilter{
				UserID: query.Get("userId"),
			}
		},
		DecodeCreate: func(body []byte) (*model.BookingEntity, error) {
			var req model.BookingCreateRequest
			if err := json.Unmarshal(body, &req); err != nil {
				// A present-but-malformed date is not a missing field.
				var parseErr *time.ParseError
				if stderrors.As(err, &parseErr) {
					return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, bookingDateFormatMsg)
				}
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, bookingCreateFieldsMsg)
			}
			if err := validatorx.ValidateStruct(&req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, bookingCreateFieldsMsg)
			}

			return &model.BookingEntity{
				UserID:         req.UserID,
				PropertyID:     req.PropertyID,
				CheckinDate:    req.CheckinDate,
				CheckoutDate:   req.CheckoutDate,
				NumberOfGuests: req.NumberOfGuests,
				TotalPrice:     req.TotalPrice,
				BookingStatus:  req.BookingStatus,
			}, nil
		},
		DecodeUpdate: func(body []byte) (map[string]any, error) {
			fields, err := decodeRawFields(body, bookingColumns)
			if err != nil {
				return nil, err
			}
			return convertBookingDates(fields)
		},
		BeforeCreate: func(ctx context.Context, entity *model.BookingEntity) error {
			user, err := users.GetByID(ctx, entity.UserID)
			if err != nil {
				return err
			}
			if user == nil {
				return errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
					"Invalid userId: user does not exist")
			}

			property, err := properties.GetByID(ctx, entity.PropertyID)
			if err != nil {
				return err
			}
			if property == nil {
				return errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
					"Invalid propertyId: property does not exist")
			}
			return nil
		},
	}

	return NewService(desc, bookings, cache, cacheTTL, sink)
}

// convertBookingDates parses RFC 3339 date strings in a raw update body into
// time.Time values the driver can write.
func convertBookingDates(fields map[string]any) (map[string]any, error) {
	for _, column := range []string{"checkin_date", "checkout_date"} {
		raw, ok := fields[column]
		if !ok {
			continue
		}
		str, ok := raw.(string)
		if !ok {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, bookingDateFormatMsg)
		}
		parsed, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, bookingDateFormatMsg)
		}
		fields[column] = parsed
	}
	return fields, nil
}

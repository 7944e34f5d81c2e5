package resource

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/model"
	bookingrepo "github.com/heystay/booking-api/repository/booking"
	redisrepo "github.com/heystay/booking-api/repository/redis"
	reviewrepo "github.com/heystay/booking-api/repository/review"
	userrepo "github.com/heystay/booking-api/repository/user"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/telemetry"
	validatorx "github.com/heystay/booking-api/utils/validator"
	"golang.org/x/crypto/bcrypt"
)

const (
	userCreateFieldsMsg = "Missing required fields. Please provide username, password, name, email, phoneNumber, and profilePicture."
	userUpdateFieldsMsg = "Missing required fields. Please provide username, name, email, phoneNumber, and profilePicture for update."
)

// NewUserApp builds the user resource. Deleting a user first removes that
// user's reviews and bookings, then the user itself.
func NewUserApp(
	users userrepo.UserRepository,
	reviews reviewrepo.ReviewRepository,
	bookings bookingrepo.BookingRepository,
	cache redisrepo.Repository,
	cacheTTL time.Duration,
	sink telemetry.Sink,
) App {
	desc := Descriptor[model.UserEntity, model.UserEntity, model.UserFilter]{
		Name:   "User",
		Plural: "users",
		ParseFilter: func(query url.Values) *model.UserFilter {
			return &model.UserFilter{
				Username: query.Get("username"),
				Email:    query.Get("email"),
			}
		},
		DecodeCreate: func(body []byte) (*model.UserEntity, error) {
			var req model.UserCreateRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, userCreateFieldsMsg)
			}
			if err := validatorx.ValidateStruct(&req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, userCreateFieldsMsg)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, errors.SetCustomError(constant.ErrInternal)
			}

			return &model.UserEntity{
				Username:       req.Username,
				PasswordHash:   string(hash),
				Name:           req.Name,
				Email:          req.Email,
				PhoneNumber:    req.PhoneNumber,
				ProfilePicture: req.ProfilePicture,
			}, nil
		},
		DecodeUpdate: func(body []byte) (map[string]any, error) {
			var req model.UserUpdateRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, userUpdateFieldsMsg)
			}
			if err := validatorx.ValidateStruct(&req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, userUpdateFieldsMsg)
			}
			return map[string]any{
				"username":        req.Username,
				"name":            req.Name,
				"email":           req.Email,
				"phone_number":    req.PhoneNumber,
				"profile_picture": req.ProfilePicture,
			}, nil
		},
		BeforeDelete: func(ctx context.Context, id string) error {
			if err := reviews.DeleteByUserID(ctx, id); err != nil {
				return err
			}
			return bookings.DeleteByUserID(ctx, id)
		},
		UniqueFields: true,
	}

	return NewService(desc, users, cache, cacheTTL, sink)
}

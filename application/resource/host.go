package resource

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/model"
	hostrepo "github.com/heystay/booking-api/repository/host"
	propertyrepo "github.com/heystay/booking-api/repository/property"
	redisrepo "github.com/heystay/booking-api/repository/redis"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/telemetry"
	validatorx "github.com/heystay/booking-api/utils/validator"
	"golang.org/x/crypto/bcrypt"
)

const (
	hostCreateFieldsMsg = "Missing required fields. Please provide username, password, name, email, phoneNumber, profilePicture, and aboutMe."
	hostUpdateFieldsMsg = "Missing required fields. Please provide username, name, email, phoneNumber, profilePicture, and aboutMe for update."
)

// NewHostApp builds the host resource. Deleting a host detaches its
// properties (host_id set to NULL) instead of deleting them.
func NewHostApp(
	hosts hostrepo.HostRepository,
	properties propertyrepo.PropertyRepository,
	cache redisrepo.Repository,
	cacheTTL time.Duration,
	sink telemetry.Sink,
) App {
	desc := Descriptor[model.HostEntity, model.HostEntity, model.HostFilter]{
		Name:   "Host",
		Plural: "hosts",
		ParseFilter: func(query url.Values) *model.HostFilter {
			return &model.HostFilter{
				Name: query.Get("name"),
			}
		},
		DecodeCreate: func(body []byte) (*model.HostEntity, error) {
			var req model.HostCreateRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, hostCreateFieldsMsg)
			}
			if err := validatorx.ValidateStruct(&req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, hostCreateFieldsMsg)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, errors.SetCustomError(constant.ErrInternal)
			}

			return &model.HostEntity{
				Username:       req.Username,
				PasswordHash:   string(hash),
				Name:           req.Name,
				Email:          req.Email,
				PhoneNumber:    req.PhoneNumber,
				ProfilePicture: req.ProfilePicture,
				AboutMe:        req.AboutMe,
			}, nil
		},
		DecodeUpdate: func(body []byte) (map[string]any, error) {
			var req model.HostUpdateRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, hostUpdateFieldsMsg)
			}
			if err := validatorx.ValidateStruct(&req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, hostUpdateFieldsMsg)
			}
			return map[string]any{
				"username":        req.Username,
				"name":            req.Name,
				"email":           req.Email,
				"phone_number":    req.PhoneNumber,
				"profile_picture": req.ProfilePicture,
				"about_me":        req.AboutMe,
			}, nil
		},
		BeforeDelete: func(ctx context.Context, id string) error {
			return properties.DetachHost(ctx, id)
		},
		UniqueFields: true,
	}

	return NewService(desc, hosts, cache, cacheTTL, sink)
}

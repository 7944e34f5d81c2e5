package resource

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/model"
	amenityrepo "github.com/heystay/booking-api/repository/amenity"
	redisrepo "github.com/heystay/booking-api/repository/redis"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/telemetry"
	validatorx "github.com/heystay/booking-api/utils/validator"
)

const amenityNameRequiredMsg = "Amenity name is required"

// NewAmenityApp builds the amenity resource.
func NewAmenityApp(
	amenities amenityrepo.AmenityRepository,
	cache redisrepo.Repository,
	cacheTTL time.Duration,
	sink telemetry.Sink,
) App {
	decode := func(body []byte) (*model.AmenityEntity, error) {
		var req model.AmenityRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, amenityNameRequiredMsg)
		}
		if err := validatorx.ValidateStruct(&req); err != nil {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, amenityNameRequiredMsg)
		}
		return &model.AmenityEntity{Name: req.Name}, nil
	}

	desc := Descriptor[model.AmenityEntity, model.AmenityEntity, model.AmenityFilter]{
		Name:   "Amenity",
		Plural: "amenities",
		ParseFilter: func(url.Values) *model.AmenityFilter {
			return &model.AmenityFilter{}
		},
		DecodeCreate: decode,
		DecodeUpdate: func(body []byte) (map[string]any, error) {
			entity, err := decode(body)
			if err != nil {
				return nil, err
			}
			return map[string]any{"name": entity.Name}, nil
		},
	}

	return NewService(desc, amenities, cache, cacheTTL, sink)
}

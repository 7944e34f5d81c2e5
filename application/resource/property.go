package resource

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/model"
	hostrepo "github.com/heystay/booking-api/repository/host"
	propertyrepo "github.com/heystay/booking-api/repository/property"
	redisrepo "github.com/heystay/booking-api/repository/redis"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/telemetry"
	validatorx "github.com/heystay/booking-api/utils/validator"
)

const propertyCreateFieldsMsg = "Missing required fields. Please provide title, description, location, pricePerNight, bedroomCount, bathRoomCount, maxGuestCount, rating, and hostId."

var propertyColumns = map[string]string{
	"title":         "title",
	"description":   "description",
	"location":      "location",
	"pricePerNight": "price_per_night",
	"bedroomCount":  "bedroom_count",
	"bathRoomCount": "bath_room_count",
	"maxGuestCount": "max_guest_count",
	"rating":        "rating",
	"hostId":        "host_id",
}

// NewPropertyApp builds the property resource. Creation connects the
// property to an existing host; updates accept a raw partial field set.
func NewPropertyApp(
	properties propertyrepo.PropertyRepository,
	hosts hostrepo.HostRepository,
	cache redisrepo.Repository,
	cacheTTL time.Duration,
	sink telemetry.Sink,
) App {
	desc := Descriptor[model.PropertyEntity, model.PropertyEntity, model.PropertyFilter]{
		Name:   "Property",
		Plural: "properties",
		ParseFilter: func(query url.Values) *model.PropertyFilter {
			filter := &model.PropertyFilter{
				Location:    query.Get("location"),
				AmenityName: query.Get("amenities"),
			}
			if raw := query.Get("pricePerNight"); raw != "" {
				if price, err := strconv.ParseFloat(raw, 64); err == nil {
					filter.PricePerNight = &price
				}
			}
			return filter
		},
		DecodeCreate: func(body []byte) (*model.PropertyEntity, error) {
			var req model.PropertyCreateRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, propertyCreateFieldsMsg)
			}
			if err := validatorx.ValidateStruct(&req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, propertyCreateFieldsMsg)
			}

			hostID := req.HostID
			return &model.PropertyEntity{
				Title:         req.Title,
				Description:   req.Description,
				Location:      req.Location,
				PricePerNight: req.PricePerNight,
				BedroomCount:  req.BedroomCount,
				BathRoomCount: req.BathRoomCount,
				MaxGuestCount: req.MaxGuestCount,
				Rating:        req.Rating,
				HostID:        &hostID,
			}, nil
		},
		DecodeUpdate: func(body []byte) (map[string]any, error) {
			return decodeRawFields(body, propertyColumns)
		},
		BeforeCreate: func(ctx context.Context, entity *model.PropertyEntity) error {
			host, err := hosts.GetByID(ctx, *entity.HostID)
			if err != nil {
				return err
			}
			if host == nil {
				return errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
					"Invalid hostId: host does not exist")
			}
			return nil
		},
		DeleteMessage: "Property deleted successfully",
	}

	return NewService(desc, properties, cache, cacheTTL, sink)
}

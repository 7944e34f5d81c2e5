package resource

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/model"
	propertyrepo "github.com/heystay/booking-api/repository/property"
	redisrepo "github.com/heystay/booking-api/repository/redis"
	reviewrepo "github.com/heystay/booking-api/repository/review"
	userrepo "github.com/heystay/booking-api/repository/user"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/telemetry"
	validatorx "github.com/heystay/booking-api/utils/validator"
)

const reviewCreateFieldsMsg = "Missing required fields. Please provide userId, propertyId, rating, and comment."

var reviewColumns = map[string]string{
	"userId":     "user_id",
	"propertyId": "property_id",
	"rating":     "rating",
	"comment":    "comment",
}

// NewReviewApp builds the review resource. Creation connects the review to
// an existing user and property.
func NewReviewApp(
	reviews reviewrepo.ReviewRepository,
	users userrepo.UserRepository,
	properties propertyrepo.PropertyRepository,
	cache redisrepo.Repository,
	cacheTTL time.Duration,
	sink telemetry.Sink,
) App {
	desc := Descriptor[model.ReviewEntity, model.ReviewDetail, model.ReviewFilter]{
		Name:   "Review",
		Plural: "reviews",
		ParseFilter: func(query url.Values) *model.ReviewFilter {
			return &model.ReviewFilter{
				UserID:     query.Get("userId"),
				PropertyID: query.Get("propertyId"),
			}
		},
		DecodeCreate: func(body []byte) (*model.ReviewEntity, error) {
			var req model.ReviewCreateRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, reviewCreateFieldsMsg)
			}
			if err := validatorx.ValidateStruct(&req); err != nil {
				return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, reviewCreateFieldsMsg)
			}

			return &model.ReviewEntity{
				UserID:     req.UserID,
				PropertyID: req.PropertyID,
				Rating:     req.Rating,
				Comment:    req.Comment,
			}, nil
		},
		DecodeUpdate: func(body []byte) (map[string]any, error) {
			return decodeRawFields(body, reviewColumns)
		},
		BeforeCreate: func(ctx context.Context, entity *model.ReviewEntity) error {
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

	return NewService(desc, reviews, cache, cacheTTL, sink)
}

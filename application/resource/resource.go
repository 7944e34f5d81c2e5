package resource

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/url"
	"strings"
	"time"

	"github.com/heystay/booking-api/constant"
	redisrepo "github.com/heystay/booking-api/repository/redis"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/logger"
	"github.com/heystay/booking-api/utils/telemetry"
	"go.uber.org/zap"
)

// App is the uniform operation set the transport layer dispatches to. Every
// resource (user, host, property, booking, review, amenity) is served by one
// Service behind this interface.
type App interface {
	List(ctx context.Context, query url.Values) (any, error)
	Get(ctx context.Context, id string) (any, error)
	Create(ctx context.Context, body []byte) (any, error)
	Update(ctx context.Context, id string, body []byte) (any, error)
	Delete(ctx context.Context, id string) (string, error)
}

// Repository is the data-access surface a resource needs: E is the entity,
// L the listing shape (entity plus embedded relations), F the filter.
type Repository[E, L, F any] interface {
	List(ctx context.Context, filter *F) ([]L, error)
	GetByID(ctx context.Context, id string) (*E, error)
	Create(ctx context.Context, data *E) (*E, error)
	Update(ctx context.Context, id string, fields map[string]any) (*E, error)
	Delete(ctx context.Context, id string) error
}

// Descriptor configures the generic service for one resource: how to parse
// filters, decode and validate bodies, which relation checks and cascades to
// run, and how store errors translate.
type Descriptor[E, L, F any] struct {
	// Name is the capitalized singular used in messages ("User"), Plural the
	// lowercase plural ("users").
	Name   string
	Plural string

	ParseFilter  func(query url.Values) *F
	DecodeCreate func(body []byte) (*E, error)
	DecodeUpdate func(body []byte) (map[string]any, error)

	// BeforeCreate runs relation existence checks before the insert.
	BeforeCreate func(ctx context.Context, entity *E) error
	// BeforeDelete runs cascade cleanup before the row itself is removed.
	BeforeDelete func(ctx context.Context, id string) error

	// DeleteMessage, when set, is returned as a confirmation body on delete.
	DeleteMessage string
	// UniqueFields translates unique-constraint violations to DuplicateField.
	UniqueFields bool
}

type Service[E, L, F any] struct {
	desc      Descriptor[E, L, F]
	repo      Repository[E, L, F]
	cache     redisrepo.Repository
	cacheTTL  time.Duration
	telemetry telemetry.Sink
}

func NewService[E, L, F any](
	desc Descriptor[E, L, F],
	repo Repository[E, L, F],
	cache redisrepo.Repository,
	cacheTTL time.Duration,
	sink telemetry.Sink,
) *Service[E, L, F] {
	return &Service[E, L, F]{
		desc:      desc,
		repo:      repo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		telemetry: sink,
	}
}

func (s *Service[E, L, F]) List(ctx context.Context, query url.Values) (any, error) {
	filter := s.desc.ParseFilter(query)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, s.internal(ctx, "List", err, "An error occurred while fetching "+s.desc.Plural)
	}
	return items, nil
}

func (s *Service[E, L, F]) Get(ctx context.Context, id string) (any, error) {
	if cached := s.fromCache(ctx, id); cached != nil {
		return cached, nil
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.internal(ctx, "Get", err, "An error occurred while fetching the "+s.lower())
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, s.desc.Name+" not found")
	}

	s.toCache(ctx, id, entity)
	return entity, nil
}

func (s *Service[E, L, F]) Create(ctx context.Context, body []byte) (any, error) {
	entity, err := s.desc.DecodeCreate(body)
	if err != nil {
		return nil, err
	}

	if s.desc.BeforeCreate != nil {
		if err := s.desc.BeforeCreate(ctx, entity); err != nil {
			var ce errors.CustomError
			if stderrors.As(err, &ce) {
				return nil, err
			}
			return nil, s.internal(ctx, "Create", err, "An error occurred while creating the "+s.lower())
		}
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		if s.desc.UniqueFields && errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateField)
		}
		if errors.IsForeignKeyViolation(err) {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
				"Invalid reference: related resource does not exist")
		}
		return nil, s.internal(ctx, "Create", err, "An error occurred while creating the "+s.lower())
	}
	return created, nil
}

func (s *Service[E, L, F]) Update(ctx context.Context, id string, body []byte) (any, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.internal(ctx, "Update", err, "An error occurred while updating the "+s.lower())
	}
	if existing == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, s.desc.Name+" not found")
	}

	fields, err := s.desc.DecodeUpdate(body)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if s.desc.UniqueFields && errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateField)
		}
		return nil, s.internal(ctx, "Update", err, "An error occurred while updating the "+s.lower())
	}

	s.invalidate(ctx, id)
	return updated, nil
}

func (s *Service[E, L, F]) Delete(ctx context.Context, id string) (string, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", s.internal(ctx, "Delete", err, "An error occurred while deleting the "+s.lower())
	}
	if existing == nil {
		return "", errors.SetCustomErrorMessage(constant.ErrNotFound, s.desc.Name+" not found")
	}

	if s.desc.BeforeDelete != nil {
		if err := s.desc.BeforeDelete(ctx, id); err != nil {
			return "", s.internal(ctx, "Delete", err, "An error occurred while deleting the "+s.lower())
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", s.internal(ctx, "Delete", err, "An error occurred while deleting the "+s.lower())
	}

	s.invalidate(ctx, id)
	return s.desc.DeleteMessage, nil
}

func (s *Service[E, L, F]) lower() string {
	return strings.ToLower(s.desc.Name)
}

// internal logs the underlying cause, forwards it to the telemetry sink and
// returns the sanitized 500 error. The cause never reaches the client.
func (s *Service[E, L, F]) internal(ctx context.Context, op string, err error, message string) error {
	logger.Error("["+s.desc.Name+op+"] unexpected failure", zap.String("error", err.Error()))
	s.telemetry.CaptureException(ctx, err)
	return errors.SetCustomErrorMessage(constant.ErrInternal, message)
}

func (s *Service[E, L, F]) fromCache(ctx context.Context, id string) *E {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.GetEntity(ctx, s.lower(), id)
	if err != nil || len(payload) == 0 {
		return nil
	}
	var entity E
	if err := json.Unmarshal(payload, &entity); err != nil {
		return nil
	}
	return &entity
}

func (s *Service[E, L, F]) toCache(ctx context.Context, id string, entity *E) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(entity)
	if err != nil {
		return
	}
	if err := s.cache.SetEntity(ctx, s.lower(), id, payload, s.cacheTTL); err != nil {
		logger.Debug("["+s.desc.Name+"Get] cache set failed", zap.String("error", err.Error()))
	}
}

func (s *Service[E, L, F]) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateEntity(ctx, s.lower(), id); err != nil {
		logger.Debug("["+s.desc.Name+"] cache invalidation failed", zap.String("error", err.Error()))
	}
}

// decodeRawFields applies a raw partial-or-full body as-is: keys present in
// the column whitelist are kept (mapped to their column name), anything else
// is dropped.
func decodeRawFields(body []byte, columns map[string]string) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		if column, ok := columns[key]; ok {
			fields[column] = value
		}
	}
	return fields, nil
}

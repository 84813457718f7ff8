package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/google/uuid"
)

const defaultPersistTimeout = 10 * time.Second

// LookupService runs device queries: classify, query the provider, then
// record the answer. Recording is best effort since the provider has
// already charged for the query.
type LookupService struct {
	classifier     *identifier.Classifier
	provider       ports.DeviceProvider
	records        ports.RecordsRepository
	logger         logger.Logger
	defaultService string
	defaultFormat  string
	persistTimeout time.Duration
	now            func() time.Time
}

var _ ports.LookupService = (*LookupService)(nil)

type LookupOption func(*LookupService)

func WithDefaults(serviceID, format string) LookupOption {
	return func(s *LookupService) {
		if serviceID != "" {
			s.defaultService = serviceID
		}

		if format != "" {
			s.defaultFormat = format
		}
	}
}

func WithPersistTimeout(d time.Duration) LookupOption {
	return func(s *LookupService) {
		s.persistTimeout = d
	}
}

func WithClock(now func() time.Time) LookupOption {
	return func(s *LookupService) {
		s.now = now
	}
}

// NewLookupService accepts a nil records repository; lookups then report
// Persisted=false and the record queries return ErrPersistenceDisabled.
func NewLookupService(
	classifier *identifier.Classifier,
	provider ports.DeviceProvider,
	records ports.RecordsRepository,
	log logger.Logger,
	opts ...LookupOption,
) *LookupService {
	s := &LookupService{
		classifier:     classifier,
		provider:       provider,
		records:        records,
		logger:         log.Component("lookup"),
		defaultService: model.DefaultServiceID,
		defaultFormat:  model.DefaultFormat,
		persistTimeout: defaultPersistTimeout,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *LookupService) QueryDevice(ctx context.Context, req ports.QueryDeviceRequest) (*model.LookupResult, error) {
	id, err := s.classifier.Classify(req.Input)
	if err != nil || !id.Valid {
		return nil, mapIdentifierError(id)
	}

	serviceID := orDefault(req.ServiceID, s.defaultService)

	result, err := s.provider.QueryDevice(ctx, model.ProviderQuery{
		Identifier: id.Normalized,
		ServiceID:  serviceID,
		Format:     orDefault(req.Format, s.defaultFormat),
	})
	if err != nil {
		log := s.logger.WithContext(ctx)
		log.Warn().
			Err(err).
			Str("kind", string(id.Kind)).
			Str("service_id", serviceID).
			Msg("device query failed")

		return nil, err
	}

	lookup := &model.LookupResult{
		Identifier: id,
		ServiceID:  serviceID,
		Device:     model.NormalizeResult(result.Result),
		Balance:    result.Balance,
		Price:      result.Price,
		OrderID:    result.OrderID,
		QueriedAt:  s.now().UTC(),
	}

	s.persist(ctx, req, lookup)

	return lookup, nil
}

func (s *LookupService) Classify(_ context.Context, raw string) (identifier.Identifier, error) {
	id, err := s.classifier.Classify(raw)
	if errors.Is(err, identifier.ErrEmptyIdentifier) {
		return id, mapIdentifierError(id)
	}

	return id, nil
}

func (s *LookupService) Balance(ctx context.Context) (*model.Balance, error) {
	return s.provider.Balance(ctx)
}

func (s *LookupService) Services(ctx context.Context) (*model.ServiceCatalog, error) {
	return s.provider.Services(ctx)
}

func (s *LookupService) SearchHistory(ctx context.Context, term, format string) (*model.HistorySearch, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, requiredField("term", "term is required")
	}

	search, err := s.provider.History(ctx, term, orDefault(format, s.defaultFormat))
	if err != nil {
		return nil, err
	}

	search.Data = model.NormalizeKeys(search.Data)

	return search, nil
}

func (s *LookupService) RecordStats(ctx context.Context) (*model.RecordStats, error) {
	if s.records == nil {
		return nil, model.ErrPersistenceDisabled
	}

	return s.records.Stats(ctx)
}

func (s *LookupService) DeviceHistory(ctx context.Context, value string, limit int) ([]model.QueryRecord, error) {
	normalized := identifier.Normalize(value)
	if normalized == "" {
		return nil, requiredField(fieldIdentifier, "identifier is required")
	}

	if s.records == nil {
		return nil, model.ErrPersistenceDisabled
	}

	return s.records.ListHistory(ctx, normalized, model.ClampHistoryLimit(limit))
}

// persist detaches from the request context so a client hanging up after a
// paid query does not lose the record.
func (s *LookupService) persist(ctx context.Context, req ports.QueryDeviceRequest, lookup *model.LookupResult) {
	if s.records == nil {
		lookup.PersistError = model.ErrPersistenceDisabled.Error()

		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistTimeout)
	defer cancel()

	now := lookup.QueriedAt
	id := lookup.Identifier

	snapshot := model.NewDeviceSnapshot(id.Normalized, id.Kind, lookup.Device)
	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now

	record := model.LookupRecord{
		Snapshot: snapshot,
		Query: model.QueryRecord{
			ID:         uuid.New(),
			Identifier: id.Normalized,
			Kind:       id.Kind,
			InputValue: req.Input,
			ServiceID:  lookup.ServiceID,
			OrderID:    optional(lookup.OrderID),
			Price:      lookup.Price,
			Balance:    lookup.Balance,
			UserID:     optional(req.UserID),
			CreatedAt:  now,
		},
	}

	log := s.logger.WithContext(ctx)

	if err := s.records.SaveLookup(ctx, record); err != nil {
		lookup.PersistError = err.Error()

		log.Error().Err(err).Str("identifier", id.Normalized).Msg("failed to persist lookup")

		return
	}

	lookup.Persisted = true

	stats, err := s.records.Stats(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read record stats")

		return
	}

	lookup.TotalRecords = &stats.TotalRecords
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return strings.TrimSpace(value)
}

package repos_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/architeacher/imei-lookup/pkg/idempotency"
	"github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/adapters/repos"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/infrastructure"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/stretchr/testify/suite"
)

var _ ports.IdempotencyCache = (*repos.IdempotencyRepository)(nil)

func newKeydbClient(addr string) *infrastructure.KeydbClient {
	return infrastructure.NewKeyDBClient(config.Cache{
		Address:       addr,
		PoolSize:      5,
		DialTimeout:   time.Second,
		ReadTimeout:   time.Second,
		WriteTimeout:  time.Second,
		DefaultExpiry: time.Hour,
	}, logger.NewTestLogger())
}

type IdempotencyRepositoryTestSuite struct {
	suite.Suite
	miniRedis   *miniredis.Miniredis
	keydbClient *infrastructure.KeydbClient
	repo        *repos.IdempotencyRepository
}

func TestIdempotencyRepositoryTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(IdempotencyRepositoryTestSuite))
}

func (s *IdempotencyRepositoryTestSuite) SetupTest() {
	s.miniRedis = miniredis.RunT(s.T())
	s.keydbClient = newKeydbClient(s.miniRedis.Addr())
	s.repo = repos.NewIdempotencyRepository(s.keydbClient)
}

func (s *IdempotencyRepositoryTestSuite) TearDownTest() {
	if s.keydbClient != nil {
		s.keydbClient.Close()
	}
}

func (s *IdempotencyRepositoryTestSuite) TestGetNonExistentKey() {
	record, err := s.repo.Get(context.Background(), "idempotency:absent")
	s.Require().NoError(err)
	s.Require().Nil(record)
}

func (s *IdempotencyRepositoryTestSuite) TestSetAndGet() {
	ctx := context.Background()
	key := idempotency.BuildCacheKey(http.MethodPost, "/v1/devices/query", "operator-7", "5a1c0e9f-3b1f-4c55-9d1e")
	record := &idempotency.Record{
		StatusCode:  http.StatusOK,
		Header:      http.Header{"Content-Type": []string{"application/json"}},
		Body:        []byte(`{"data":{"persisted":true}}`),
		Fingerprint: idempotency.Fingerprint([]byte(`{"input":"490154203237518"}`)),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	s.Require().NoError(s.repo.Set(ctx, key, record, time.Hour))

	retrieved, err := s.repo.Get(ctx, key)
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)
	s.Require().Equal(record.StatusCode, retrieved.StatusCode)
	s.Require().Equal(record.Header, retrieved.Header)
	s.Require().Equal(record.Body, retrieved.Body)
	s.Require().Equal(record.Fingerprint, retrieved.Fingerprint)
	s.Require().True(record.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *IdempotencyRepositoryTestSuite) TestCorruptRecord() {
	s.Require().NoError(s.miniRedis.Set("idempotency:corrupt", "not-json"))

	_, err := s.repo.Get(context.Background(), "idempotency:corrupt")
	s.Require().Error(err)
}

func (s *IdempotencyRepositoryTestSuite) TestLockLifecycle() {
	ctx := context.Background()
	key := "idempotency:lock-test"

	acquired, err := s.repo.AcquireLock(ctx, key, time.Minute)
	s.Require().NoError(err)
	s.Require().True(acquired)
	s.Require().True(s.miniRedis.Exists(idempotency.LockKey(key)))

	acquired, err = s.repo.AcquireLock(ctx, key, time.Minute)
	s.Require().NoError(err)
	s.Require().False(acquired)

	s.Require().NoError(s.repo.ReleaseLock(ctx, key))

	acquired, err = s.repo.AcquireLock(ctx, key, time.Minute)
	s.Require().NoError(err)
	s.Require().True(acquired)
}

func (s *IdempotencyRepositoryTestSuite) TestLockExpires() {
	ctx := context.Background()
	key := "idempotency:expiring-lock"

	acquired, err := s.repo.AcquireLock(ctx, key, time.Second)
	s.Require().NoError(err)
	s.Require().True(acquired)

	s.miniRedis.FastForward(2 * time.Second)

	acquired, err = s.repo.AcquireLock(ctx, key, time.Second)
	s.Require().NoError(err)
	s.Require().True(acquired)
}

func (s *IdempotencyRepositoryTestSuite) TestExpiration() {
	ctx := context.Background()
	key := "idempotency:expiring"

	s.Require().NoError(s.repo.Set(ctx, key, &idempotency.Record{StatusCode: http.StatusOK}, 100*time.Millisecond))

	s.miniRedis.FastForward(200 * time.Millisecond)

	retrieved, err := s.repo.Get(ctx, key)
	s.Require().NoError(err)
	s.Require().Nil(retrieved)
}

func (s *IdempotencyRepositoryTestSuite) TestIsHealthyAfterClose() {
	s.Require().True(s.repo.IsHealthy(context.Background()))

	s.Require().NoError(s.keydbClient.Close())
	s.Require().False(s.repo.IsHealthy(context.Background()))
	s.keydbClient = nil
}

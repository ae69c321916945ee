package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
)

// RedisStore keeps analyses in Redis as JSON under notes:analysis:<note id>
type RedisStore struct {
	client redis.UniversalClient
}

var _ repositories.AnalysisCache = (*RedisStore)(nil)

// NewRedisClient connects to Redis, retrying the first ping with
// exponential backoff for up to cfg.Redis.ConnectTimeout.
func NewRedisClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cfg.Redis.ConnectTimeout
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		if err := client.Ping(ctx).Err(); err != nil {
			if logger != nil {
				logger.Warn("⏳ redis not ready", zap.Int("attempt", attempt), zap.Error(err))
			}
			return err
		}
		return nil
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if logger != nil {
		logger.Info("✅ Redis connected", zap.String("addr", cfg.GetRedisAddr()))
	}
	return client, nil
}

// NewRedisStore wraps a connected client
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// Get loads a note's cached analysis
func (s *RedisStore) Get(ctx context.Context, noteID uuid.UUID) (*entities.NoteAnalysis, bool, error) {
	raw, err := s.client.Get(ctx, analysisKey(noteID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var analysis entities.NoteAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, false, fmt.Errorf("decode cached analysis: %w", err)
	}
	return &analysis, true, nil
}

// Set stores the analysis. A non-positive ttl keeps it until overwritten.
func (s *RedisStore) Set(ctx context.Context, analysis *entities.NoteAnalysis, ttl time.Duration) error {
	raw, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, analysisKey(analysis.NoteID), raw, ttl).Err()
}

// Delete drops a note's cached analysis
func (s *RedisStore) Delete(ctx context.Context, noteID uuid.UUID) error {
	return s.client.Del(ctx, analysisKey(noteID)).Err()
}

package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	CheckRateLimit(ctx context.Context, key string) (bool, int, int, error)
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.Config
	now    func() time.Time
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("host", cfg.RedisConnect.Host), slog.String("port", cfg.RedisConnect.Port))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return NewRateLimitRepoWithClock(client, cfg, time.Now)
}

func NewRateLimitRepoWithClock(client *redis.Client, cfg *config.Config, now func() time.Time) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg, now: now}
}

// CheckRateLimit records a request under key in a sliding window and returns
// isAllowed, requests left, seconds to wait, error.
func (r *redisRepository) CheckRateLimit(ctx context.Context, key string) (bool, int, int, error) {

	redisKey := "rate_limit:" + key

	now := r.now()
	window := r.cfg.RateConfig.WindowSize
	windowStart := now.Add(-window).UnixNano()

	pipe := r.client.Pipeline()

	// drop requests that fell out of the window
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))

	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})

	count := pipe.ZCard(ctx, redisKey)

	pipe.Expire(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	requests := count.Val()
	limit := r.cfg.RateConfig.MaxRequests

	if requests > limit {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{
			Key: redisKey, Start: 0, Stop: 0,
		}).Result()
		if err != nil {
			return false, 0, int(window.Seconds()), fmt.Errorf("failed to get oldest request time: %w", err)
		}

		if len(scores) == 0 {
			return false, 0, int(window.Seconds()), nil
		}

		oldest := time.Unix(0, int64(scores[0].Score))
		retryAfter := max(int(oldest.Add(window).Sub(now).Seconds()+0.5), 1)

		return false, 0, retryAfter, nil
	}

	return true, int(limit - requests), 0, nil
}

/*
	rate_limit:user:42
	----------------------------------------
	| Score (unix nanos)  | Member (unix nanos) |
	----------------------------------------
	| 1700000000000000000 | 1700000000000000000 |
	| 1700000020000000000 | 1700000020000000000 |
*/

package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/config"
	"github.com/Staillim/YourSubLink-sub000/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	VisitKeyPrefix = "visit:ip:"
	GateKeyPrefix  = "gate:sess:"
	VisitRecordTTL = 30 * 24 * time.Hour
)

// consumeVisitScript is the atomic half of the abuse window guard: it takes
// the most recent of the server-side record and the visitor cookie, allows
// the visit only when the window has elapsed, and consumes the window in
// the same EVAL. Two concurrent clicks from one IP cannot both pass.
var consumeVisitScript = redis.NewScript(`
local last = tonumber(redis.call('GET', KEYS[1]) or '0')
local cookie = tonumber(ARGV[1])
if cookie > last then
  last = cookie
end
local now = tonumber(ARGV[2])
local window = tonumber(ARGV[3])
if last == 0 or now - last >= window then
  redis.call('SET', KEYS[1], now, 'PX', ARGV[4])
  return 1
end
return 0
`)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// ConsumeVisit performs the atomic check-and-consume of the per-IP
// monetization window. cookieMillis carries the client-side half of the
// signal; zero means no cookie. Returns true when the visit may monetize.
func (r *RedisRepository) ConsumeVisit(ctx context.Context, ip string, cookieMillis, nowMillis, windowMillis int64) (bool, error) {
	res, err := consumeVisitScript.Run(ctx, r.client,
		[]string{r.visitKey(ip)},
		cookieMillis, nowMillis, windowMillis, VisitRecordTTL.Milliseconds(),
	).Int64()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// LastVisit returns the server-side last monetized visit for an IP in
// epoch millis, 0 when absent
func (r *RedisRepository) LastVisit(ctx context.Context, ip string) (int64, error) {
	millis, err := r.client.Get(ctx, r.visitKey(ip)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return millis, err
}

// SaveGateSession stores a gate session as JSON with a TTL
func (r *RedisRepository) SaveGateSession(ctx context.Context, sess *model.GateSession, ttl time.Duration) error {
	bytes, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.gateKey(sess.ID), bytes, ttl).Err()
}

// GetGateSession retrieves a gate session by id
func (r *RedisRepository) GetGateSession(ctx context.Context, sessionID string) (*model.GateSession, error) {
	bytes, err := r.client.Get(ctx, r.gateKey(sessionID)).Bytes()
	if err != nil {
		return nil, err
	}

	var sess model.GateSession
	if err := json.Unmarshal(bytes, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// DeleteGateSession removes a gate session
func (r *RedisRepository) DeleteGateSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.gateKey(sessionID)).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Helper functions to build Redis keys

func (r *RedisRepository) visitKey(ip string) string {
	return VisitKeyPrefix + ip
}

func (r *RedisRepository) gateKey(sessionID string) string {
	return GateKeyPrefix + sessionID
}

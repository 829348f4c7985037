package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/ryhazerus/mcpi/store"
)

// Compile-time interface check.
var _ store.Store = (*RedisStore)(nil)

// RedisStore is a Store backed by Redis. Each session is stored as a Redis
// list of "x,y" entries, appended with RPUSH so list order is insertion order.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Append pushes s onto the session's list and returns the new list length.
func (r *RedisStore) Append(ctx context.Context, session string, s store.Sample) (int64, error) {
	n, err := r.client.RPush(ctx, redisKey(session), encodeSample(s)).Result()
	if err != nil {
		return 0, fmt.Errorf("mcpi/store/redis: append: %w", err)
	}
	return n, nil
}

// Load returns every sample in the session's list.
func (r *RedisStore) Load(ctx context.Context, session string) ([]store.Sample, error) {
	vals, err := r.client.LRange(ctx, redisKey(session), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("mcpi/store/redis: load: %w", err)
	}

	out := make([]store.Sample, 0, len(vals))
	for _, v := range vals {
		s, err := decodeSample(v)
		if err != nil {
			return nil, fmt.Errorf("mcpi/store/redis: load: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Count returns the length of the session's list.
func (r *RedisStore) Count(ctx context.Context, session string) (int64, error) {
	n, err := r.client.LLen(ctx, redisKey(session)).Result()
	if err != nil {
		return 0, fmt.Errorf("mcpi/store/redis: count: %w", err)
	}
	return n, nil
}

// Reset removes the session's list.
func (r *RedisStore) Reset(ctx context.Context, session string) error {
	if err := r.client.Del(ctx, redisKey(session)).Err(); err != nil {
		return fmt.Errorf("mcpi/store/redis: reset: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func redisKey(session string) string {
	return "mcpi:" + session
}

func encodeSample(s store.Sample) string {
	return strconv.FormatFloat(s.X, 'g', -1, 64) + "," + strconv.FormatFloat(s.Y, 'g', -1, 64)
}

func decodeSample(v string) (store.Sample, error) {
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return store.Sample{}, fmt.Errorf("malformed sample %q", v)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return store.Sample{}, fmt.Errorf("parse x of %q: %w", v, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return store.Sample{}, fmt.Errorf("parse y of %q: %w", v, err)
	}
	return store.Sample{X: x, Y: y}, nil
}

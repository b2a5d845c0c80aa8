package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	fieldToken    = "token"
	fieldTheme    = "theme"
	fieldLanguage = "language"
)

// RedisPreferences keeps one hash per visitor session, expiring alongside the
// in-memory session registry.
type RedisPreferences struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPreferences(rdb *redis.Client, ttl time.Duration) *RedisPreferences {
	return &RedisPreferences{rdb: rdb, ttl: ttl}
}

func prefKey(sessionID string) string {
	return fmt.Sprintf("visitor:%s:prefs", sessionID)
}

func (r *RedisPreferences) Load(ctx context.Context, sessionID string) (Preferences, error) {
	values, err := r.rdb.HGetAll(ctx, prefKey(sessionID)).Result()
	if err != nil {
		return Preferences{}, err
	}
	return Preferences{
		Token:    values[fieldToken],
		Theme:    values[fieldTheme],
		Language: values[fieldLanguage],
	}, nil
}

func (r *RedisPreferences) setField(ctx context.Context, sessionID, field, value string) error {
	key := prefKey(sessionID)
	if err := r.rdb.HSet(ctx, key, field, value).Err(); err != nil {
		return err
	}
	return r.rdb.Expire(ctx, key, r.ttl).Err()
}

func (r *RedisPreferences) SetToken(ctx context.Context, sessionID, token string) error {
	return r.setField(ctx, sessionID, fieldToken, token)
}

func (r *RedisPreferences) DeleteToken(ctx context.Context, sessionID string) error {
	return r.rdb.HDel(ctx, prefKey(sessionID), fieldToken).Err()
}

func (r *RedisPreferences) SetTheme(ctx context.Context, sessionID, theme string) error {
	return r.setField(ctx, sessionID, fieldTheme, theme)
}

func (r *RedisPreferences) SetLanguage(ctx context.Context, sessionID, language string) error {
	return r.setField(ctx, sessionID, fieldLanguage, language)
}

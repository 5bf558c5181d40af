package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/pkg/utils"
)

const (
	tokenKey        = "vpadmin:token"
	refreshTokenKey = "vpadmin:refreshToken"
	userKey         = "vpadmin:user"
)

// RedisStore keeps credentials in Redis, so several admin workstations or a
// shared jump host can reuse one signed-in session. Keys expire with the
// access token.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore from a redis:// URL
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

// NewRedisStoreWithClient wraps an existing client
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load reads credentials from Redis. Missing keys yield empty credentials.
func (s *RedisStore) Load() (Credentials, error) {
	ctx := context.Background()
	var creds Credentials

	token, err := s.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Credentials{}, nil
		}
		return Credentials{}, err
	}
	creds.Token = token

	if refresh, err := s.client.Get(ctx, refreshTokenKey).Result(); err == nil {
		creds.RefreshToken = refresh
	} else if !errors.Is(err, redis.Nil) {
		return Credentials{}, err
	}

	userJSON, err := s.client.Get(ctx, userKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return creds, nil
		}
		return Credentials{}, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
		creds.User = &user
	}

	return creds, nil
}

// Save writes credentials to Redis with a TTL derived from the access
// token's expiry, so stale sessions age out on their own.
func (s *RedisStore) Save(creds Credentials) error {
	ctx := context.Background()

	var ttl time.Duration
	if exp, ok := utils.TokenExpiration(creds.Token); ok {
		ttl = time.Until(exp)
		if ttl < 0 {
			ttl = time.Second
		}
	}

	if err := s.client.Set(ctx, tokenKey, creds.Token, ttl).Err(); err != nil {
		return err
	}
	if creds.RefreshToken != "" {
		if err := s.client.Set(ctx, refreshTokenKey, creds.RefreshToken, 0).Err(); err != nil {
			return err
		}
	}
	if creds.User != nil {
		userJSON, err := json.Marshal(creds.User)
		if err != nil {
			return err
		}
		if err := s.client.Set(ctx, userKey, string(userJSON), ttl).Err(); err != nil {
			return err
		}
	}
	return nil
}

// Clear deletes all credential keys
func (s *RedisStore) Clear() error {
	return s.client.Del(context.Background(), tokenKey, refreshTokenKey, userKey).Err()
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"realtrust-http-service/internal/infrastructure/config"
)

// Cache keys for the public content lists.
const (
	CacheKeyProjects = "content:projects"
	CacheKeyClients  = "content:clients"
)

// RedisService handles Redis operations. Content services use it as a
// read-through cache for the public lists; it is optional and a nil
// *RedisService simply disables caching.
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Ping verifies the Redis connection
func (s *RedisService) Ping(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(s.Ctx, timeout)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}

// Set stores a JSON-encoded value with an expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get loads a JSON-encoded value into dest. Returns redis.Nil on a miss.
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes a key
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

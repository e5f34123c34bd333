package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis ouvre la connexion Redis et vérifie qu'elle répond.
func NewRedis(ctx context.Context, host, password string) (*redis.Client, error) {
	if host == "" {
		return nil, fmt.Errorf("REDIS_HOST non configuré")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         host,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("impossible de se connecter à Redis: %w", err)
	}
	return client, nil
}

// RedisCounter implémente Counter sur Redis ; les compteurs sont partagés
// entre toutes les instances de la vitrine.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Get(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return val, err
}

// Incr incrémente le compteur et (ré)arme sa fenêtre d'expiration.
func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (r *RedisCounter) SetFlag(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Set(ctx, key, "1", ttl).Err()
}

// TTL renvoie la durée restante de la clé, 0 si elle n'existe pas.
func (r *RedisCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

func (r *RedisCounter) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCounter) Close() error {
	return r.client.Close()
}

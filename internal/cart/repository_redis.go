package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// --------------------------------------------------
// REDIS CART REPOSITORY
// --------------------------------------------------

// Carts expire after a day of inactivity; every save renews the TTL.
const cartTTL = 24 * time.Hour

type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func cartKey(customerID string) string {
	return "cart:" + customerID
}

func (r *RedisRepository) Save(ctx context.Context, customerID string, lines []Line) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(customerID), payload, cartTTL).Err()
}

func (r *RedisRepository) Get(ctx context.Context, customerID string) ([]Line, error) {
	payload, err := r.client.Get(ctx, cartKey(customerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Line{}, nil
		}
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(payload, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *RedisRepository) Clear(ctx context.Context, customerID string) error {
	return r.client.Del(ctx, cartKey(customerID)).Err()
}

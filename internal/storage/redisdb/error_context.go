// Package redisdb provides an implementation of [authres.ErrorContextManager]
// backed by Redis. Records expire after the configured TTL, so abandoned
// error contexts are cleaned up by the store itself.
package redisdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/luikyv/go-authres/pkg/authres"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "error_context:"

type ErrorContextManager struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewErrorContextManager(client *redis.Client, ttl time.Duration) ErrorContextManager {
	return ErrorContextManager{
		Client: client,
		TTL:    ttl,
	}
}

func (manager ErrorContextManager) Save(
	ctx context.Context,
	ec authres.ErrorContext,
) (
	string,
	error,
) {
	if ec.ID == "" {
		ec.ID = uuid.NewString()
	}

	data, err := json.Marshal(ec)
	if err != nil {
		return "", err
	}

	if err := manager.Client.Set(ctx, keyPrefix+ec.ID, data, manager.TTL).Err(); err != nil {
		return "", fmt.Errorf("%w: %v", authres.ErrStoreUnavailable, err)
	}

	return ec.ID, nil
}

func (manager ErrorContextManager) ErrorContextByID(
	ctx context.Context,
	id string,
) (
	authres.ErrorContext,
	error,
) {
	data, err := manager.Client.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return authres.ErrorContext{}, errors.New("entity not found")
		}
		return authres.ErrorContext{}, fmt.Errorf("%w: %v", authres.ErrStoreUnavailable, err)
	}

	var ec authres.ErrorContext
	if err := json.Unmarshal([]byte(data), &ec); err != nil {
		return authres.ErrorContext{}, err
	}

	return ec, nil
}

func (manager ErrorContextManager) Delete(
	ctx context.Context,
	id string,
) error {
	if err := manager.Client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: %v", authres.ErrStoreUnavailable, err)
	}

	return nil
}

var _ authres.ErrorContextManager = ErrorContextManager{}

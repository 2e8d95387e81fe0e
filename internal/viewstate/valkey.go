// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package viewstate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces instance keys in Valkey to avoid collisions.
const keyPrefix = "viewstate:"

// ValkeyStore stores page instances as JSON in Valkey with a sliding TTL.
type ValkeyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewValkeyStore creates an instance store backed by the given Valkey client.
func NewValkeyStore(client *redis.Client, ttl time.Duration) *ValkeyStore {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &ValkeyStore{client: client, ttl: ttl}
}

// Create stores a new instance and returns its id.
func (s *ValkeyStore) Create(ctx context.Context, data *Data) (string, error) {
	id := NewID()
	data.CreatedAt = time.Now()
	if err := s.put(ctx, id, data); err != nil {
		return "", fmt.Errorf("viewstate create: %w", err)
	}
	return id, nil
}

// Get loads an instance from Valkey.
func (s *ValkeyStore) Get(ctx context.Context, id string) (*Data, error) {
	if !ValidID(id) {
		return nil, ErrNotFound
	}

	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("viewstate get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("viewstate unmarshal: %w", err)
	}
	return &data, nil
}

// Save replaces an existing instance and resets its TTL. An instance that
// expired in the meantime is not brought back.
func (s *ValkeyStore) Save(ctx context.Context, id string, data *Data) error {
	if !ValidID(id) {
		return ErrNotFound
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("viewstate save: marshal: %w", err)
	}
	ok, err := s.client.SetXX(ctx, keyPrefix+id, payload, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("viewstate save: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *ValkeyStore) put(ctx context.Context, id string, data *Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err()
}

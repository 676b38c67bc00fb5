// Package redisstore implements kv.Store on Redis. Every key is namespaced
// with a configurable prefix so the store can share a Redis database.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"printshop-backend/internal/kv"
)

const scanBatch = 200

type KVStore struct {
	client    *redis.Client
	namespace string
}

func NewKVStore(client *redis.Client, namespace string) *KVStore {
	return &KVStore{client: client, namespace: namespace}
}

// Connect dials Redis and verifies the connection with PING.
func Connect(ctx context.Context, addr, password string, db int, namespace string) (*KVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return NewKVStore(client, namespace), nil
}

func (s *KVStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	data, err := s.client.Get(ctx, s.namespace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return json.RawMessage(data), nil
}

func (s *KVStore) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	if err := s.client.Set(ctx, s.namespace+key, []byte(value), 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.namespace+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Scan walks matching keys with SCAN and fetches their values with MGET.
// Keys removed between the two calls are skipped.
func (s *KVStore) Scan(ctx context.Context, prefix string) ([]kv.Entry, error) {
	match := escapeGlob(s.namespace+prefix) + "*"

	var keys []string
	iter := s.client.Scan(ctx, 0, match, scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", prefix, err)
	}

	entries := make([]kv.Entry, 0, len(keys))
	if len(keys) == 0 {
		return entries, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", prefix, err)
	}

	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		entries = append(entries, kv.Entry{
			Key:   strings.TrimPrefix(keys[i], s.namespace),
			Value: json.RawMessage(str),
		})
	}
	return entries, nil
}

func (s *KVStore) Close() error {
	return s.client.Close()
}

// escapeGlob escapes the glob metacharacters understood by SCAN MATCH.
func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}

package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"printshop-backend/internal/kv"
)

// scanPageSize is the row count requested per Scan page. Hosted Supabase
// caps responses at 1000 rows by default.
const scanPageSize = 1000

// tableSource is satisfied by both *supabase.Client and *postgrest.Client.
type tableSource interface {
	From(table string) *postgrest.QueryBuilder
}

type kvRow struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// KVStore implements kv.Store over a PostgREST table with a text "key"
// primary key and a jsonb "value" column. The PostgREST client has no
// context support; ctx is only checked before each request.
type KVStore struct {
	source tableSource
	table  string
}

func NewKVStore(source tableSource, table string) *KVStore {
	return &KVStore{source: source, table: table}
}

func (s *KVStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []kvRow
	if _, err := s.source.From(s.table).
		Select("key,value", "", false).
		Eq("key", key).
		ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if len(rows) == 0 {
		return nil, kv.ErrNotFound
	}
	return rows[0].Value, nil
}

func (s *KVStore) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row := kvRow{Key: key, Value: value}
	if _, _, err := s.source.From(s.table).
		Upsert(row, "key", "minimal", "").
		Execute(); err != nil {
		return fmt.Errorf("failed to upsert %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, _, err := s.source.From(s.table).
		Delete("minimal", "").
		Eq("key", key).
		Execute(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Scan pages through the matches in key order. PostgREST truncates each
// response to the server's max-rows setting without reporting an error, so a
// short page does not mean the end: paging stops on the first empty page.
func (s *KVStore) Scan(ctx context.Context, prefix string) ([]kv.Entry, error) {
	pattern := kv.EscapeLike(prefix) + "%"
	entries := make([]kv.Entry, 0)

	for from := 0; ; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var rows []kvRow
		if _, err := s.source.From(s.table).
			Select("key,value", "", false).
			Like("key", pattern).
			Order("key", &postgrest.OrderOpts{Ascending: true}).
			Range(from, from+scanPageSize-1, "").
			ExecuteTo(&rows); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", prefix, err)
		}
		if len(rows) == 0 {
			return entries, nil
		}

		for _, r := range rows {
			entries = append(entries, kv.Entry{Key: r.Key, Value: r.Value})
		}
		from += len(rows)
	}
}

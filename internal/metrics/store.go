package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"printshop-backend/internal/kv"
)

// InstrumentedStore records every call on the wrapped store. A Get miss is
// counted as "not_found", not as an error.
type InstrumentedStore struct {
	next    kv.Store
	backend string
	metrics *Metrics
}

func InstrumentStore(next kv.Store, backend string, m *Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, backend: backend, metrics: m}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	start := time.Now()
	v, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return v, err
}

func (s *InstrumentedStore) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	start := time.Now()
	err := s.next.Upsert(ctx, key, value)
	s.observe("upsert", start, err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.observe("delete", start, err)
	return err
}

func (s *InstrumentedStore) Scan(ctx context.Context, prefix string) ([]kv.Entry, error) {
	start := time.Now()
	entries, err := s.next.Scan(ctx, prefix)
	s.observe("scan", start, err)
	return entries, err
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, kv.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	s.metrics.StoreOperations.WithLabelValues(s.backend, op, result).Inc()
	s.metrics.StoreDuration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
}

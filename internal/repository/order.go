package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"printshop-backend/internal/kv"
	"printshop-backend/internal/models"
)

// TimestampFormat matches the ISO-8601 form the storefront renders.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// OrderRepository creates and lists quote orders. Orders are never updated
// or deleted once written.
type OrderRepository struct {
	store  kv.Store
	now    func() time.Time
	suffix func() string
}

func NewOrderRepository(store kv.Store) *OrderRepository {
	return &OrderRepository{
		store:  store,
		now:    time.Now,
		suffix: randomSuffix,
	}
}

// Create assigns a fresh orderId and createdAt to fields and stores the order.
func (r *OrderRepository) Create(ctx context.Context, fields models.OrderFields) (models.Order, error) {
	now := r.now().UTC()
	order := models.Order{
		OrderFields: fields,
		OrderID:     NewOrderID(now, r.suffix()),
		CreatedAt:   now.Format(TimestampFormat),
	}

	data, err := json.Marshal(order)
	if err != nil {
		return models.Order{}, storeErr("encode order", err)
	}
	if err := r.store.Upsert(ctx, kv.OrderKey(order.OrderID), data); err != nil {
		return models.Order{}, storeErr("create order", err)
	}
	return order, nil
}

// List returns every stored order, newest first.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	entries, err := r.store.Scan(ctx, kv.PrefixFor(kv.KindOrder))
	if err != nil {
		return nil, storeErr("list orders", err)
	}

	entries = kv.FilterKind(entries, kv.KindOrder)
	orders := make([]models.Order, 0, len(entries))
	for _, e := range entries {
		var o models.Order
		if err := json.Unmarshal(e.Value, &o); err != nil {
			return nil, storeErr("decode order "+e.Key, err)
		}
		orders = append(orders, o)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	return orders, nil
}

// NewOrderID builds "order_<unix millis>_<suffix>".
func NewOrderID(t time.Time, suffix string) string {
	return fmt.Sprintf("%s%d_%s", kv.OrderPrefix, t.UnixMilli(), suffix)
}

// randomSuffix takes 48 random bits from a v4 UUID.
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

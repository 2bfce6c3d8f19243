package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Skotchmaster/sleepsound/pkg/logging"
)

// Keys of the persisted collections.
const (
	KeyCart     = "cart"
	KeyOrders   = "orders"
	KeyUsers    = "users"
	KeyAdmins   = "admins"
	KeyProducts = "products"
)

// Store is a durable key to JSON document map. SetMany writes all entries or
// none of them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	SetMany(ctx context.Context, entries map[string][]byte) error
}

// Load decodes the value under key. Missing, unreadable or corrupt values
// yield def; the latter two are logged.
func Load[T any](ctx context.Context, s Store, key string, def T) T {
	l := logging.FromContext(ctx).With("svc", "storage.load", "key", key)

	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		l.Warn("load_error", "reason", "read failed, using default", "error", err)
		return def
	}
	if !ok || len(raw) == 0 {
		return def
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		l.Warn("load_error", "reason", "corrupt value, using default", "error", err)
		return def
	}
	return out
}

// Encode marshals every value, failing on the first one that cannot be encoded.
func Encode(values map[string]any) (map[string][]byte, error) {
	out := make(map[string][]byte, len(values))
	for k, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
		out[k] = b
	}
	return out, nil
}

// Save encodes values and writes them in one SetMany call.
func Save(ctx context.Context, s Store, values map[string]any) error {
	entries, err := Encode(values)
	if err != nil {
		return err
	}
	return s.SetMany(ctx, entries)
}

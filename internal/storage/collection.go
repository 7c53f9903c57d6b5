package storage

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/tabrez-nitr/doit/internal/logging"
	"github.com/tabrez-nitr/doit/internal/storage/sqlite"
)

// LoadCollection reads and decodes the JSON snapshot stored under key.
// A missing, unreadable, or unparsable slot yields an empty collection:
// local data that cannot be read is treated as "no data yet" so the
// application stays usable. The failure is logged, never returned.
func LoadCollection[T any](ctx context.Context, store sqlite.Store, key string) []T {
	raw, err := store.Load(ctx, key)
	if err != nil {
		logging.Warn("failed to read slot, starting empty",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logging.Warn("failed to parse slot, starting empty",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}

// SaveCollection encodes the collection as JSON and overwrites the slot.
// Every save is a full snapshot; there is no merge semantics.
func SaveCollection[T any](ctx context.Context, store sqlite.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Save(ctx, key, raw)
}

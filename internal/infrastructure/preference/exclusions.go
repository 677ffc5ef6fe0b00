package preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	jsoniter "github.com/json-iterator/go"

	"github.com/SuperOrca/sbshards/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const DefaultExclusionsKey = "ignoredShards"

// ExclusionRepository stores the excluded shard names as a JSON array under
// a single key.
type ExclusionRepository struct {
	store Store
	key   string
}

func NewExclusionRepository(store Store, key string) *ExclusionRepository {
	if key == "" {
		key = DefaultExclusionsKey
	}

	return &ExclusionRepository{
		store: store,
		key:   key,
	}
}

// Load returns nil when nothing is stored yet. A stored value that is not
// a JSON array of strings is reported as an error.
func (r *ExclusionRepository) Load(ctx context.Context) ([]string, error) {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.Get: %w", err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	logger(ctx).Debug("exclusions loaded", slog.Int(logx.FieldCount, len(names)))

	return names, nil
}

func (r *ExclusionRepository) Save(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}

	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}

	return nil
}

// Reset removes the stored value entirely.
func (r *ExclusionRepository) Reset(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}

	return nil
}

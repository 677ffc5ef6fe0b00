// Package preference persists user preferences in a key-value store.
package preference

import (
	"context"
	"errors"

	"github.com/SuperOrca/sbshards/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("preference not found")

// Store is the key-value contract every backend implements. Values are
// opaque bytes; Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

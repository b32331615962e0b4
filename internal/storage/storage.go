package storage

import (
	"context"
)

// PhotoStorage resolves specialist photo object keys to URLs the display can load.
type PhotoStorage interface {
	PhotoURL(ctx context.Context, key string) (string, error)
}

package blob

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested key holds no document
var ErrNotFound = errors.New("document not found")

// Store is key-addressed document storage. Each collection lives under one
// key as a single JSON document; Upload overwrites whole documents
// unconditionally.
type Store interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte) error
}

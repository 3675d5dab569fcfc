package catalog

import "context"

// ObjectStorage abstracts the image object store. Implementations return
// the public URL of the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

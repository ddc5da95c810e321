package contract

import "context"

// DocumentArchive keeps raw scraped and computed documents as JSON under
// date-partitioned keys, independent of the vector index.
type DocumentArchive interface {
	Put(ctx context.Context, key string, doc interface{}) error
	Get(ctx context.Context, key string, out interface{}) error
}

package storage

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)

	// SetMany writes all pairs in one transaction.
	SetMany(ctx context.Context, values map[string][]byte) error
	// DeleteMany removes all keys in one transaction. Absent keys are ignored.
	DeleteMany(ctx context.Context, keys ...string) error
}

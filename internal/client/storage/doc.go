// Package storage is the device-local durable key/value store of the client.
//
// Values live in a single SQLite table (kv) opened with the pure-Go
// modernc.org/sqlite driver; the schema is applied by goose from the embedded
// migrations. The store knows nothing about credentials: it persists opaque
// byte values under string keys and offers atomic multi-key writes and deletes.
//
// A missing key is not an error: Get returns (nil, nil).
package storage

// Package kv provides the key/value medium the listing store persists its
// documents into.
//
// # Overview
//
// Repository is the storage port: whole values addressed by string keys,
// with no partial updates. Three implementations are provided:
//
//   - SQLRepository: a `kv` table in SQLite or PostgreSQL (see
//     internal/migrations), the default local medium
//   - RedisRepository: namespaced keys in a Redis database
//   - MemoryRepository: a process-local map, used by tests and the
//     `memory` storage mode
//
// # Contract
//
// Get returns (nil, nil) for a missing key. Delete of a missing key is not
// an error. SetMany writes all pairs or none where the medium supports it
// (a SQL transaction, a Redis MULTI/EXEC block).
//
// Typical Usage
//
//	repo := kv.NewSQLRepository(db, dbx.DialectSQLite)
//	_ = repo.Set(ctx, "imob_properties", doc)
//	doc, _ := repo.Get(ctx, "imob_properties")
package kv

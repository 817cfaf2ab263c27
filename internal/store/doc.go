// Package store provides session-scoped key/value storage backends.
//
// Every backend implements domain.SessionStorage and keeps its items only for
// the lifetime of one session:
//   - MemoryStorage keeps items in process memory.
//   - FileStorage keeps one JSON document per session on disk and treats a
//     session as ended once it has been idle for longer than its TTL.
//   - RedisStorage keeps one key per item with a TTL that is renewed on every
//     write.
//
// All methods are concurrency-safe. Backend failures are wrapped with
// domain.ErrStorage.
package store

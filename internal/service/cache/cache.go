package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL. The gateway
// keys entries on table identity plus modification time, so a rewritten
// table invalidates wholesale by key change.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}

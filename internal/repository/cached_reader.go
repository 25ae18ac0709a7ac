package repository

import (
	"context"
	"encoding/json"
	"time"

	"OilPulse/internal/domain/models"
	domrepo "OilPulse/internal/domain/repository"
	"OilPulse/internal/service/cache"
	applogger "OilPulse/pkg/logger"
)

// CachedTableReader decorates a TableReader with a byte cache. Entries key on
// the reader's Version token, which embeds the file's modification time, so a
// pipeline rewrite rolls the key instead of requiring invalidation.
type CachedTableReader struct {
	inner domrepo.TableReader
	cache cache.BytesCache
	ttl   time.Duration
	log   *applogger.Logger
}

func NewCachedTableReader(inner domrepo.TableReader, c cache.BytesCache, ttl time.Duration, log *applogger.Logger) *CachedTableReader {
	return &CachedTableReader{inner: inner, cache: c, ttl: ttl, log: log.With("cached_reader")}
}

func (r *CachedTableReader) ReadTable(ctx context.Context, table string) (*models.RawTable, error) {
	key, ok := r.inner.Version(ctx, table)
	if !ok {
		// No version means no file yet; let the inner reader produce the
		// canonical storage error.
		return r.inner.ReadTable(ctx, table)
	}

	if b, hit, cerr := r.cache.GetBytes(key); cerr == nil && hit {
		var t models.RawTable
		if uerr := json.Unmarshal(b, &t); uerr == nil {
			return &t, nil
		}
		r.log.Warn("discarding undecodable cache entry", applogger.String("key", key))
	} else if cerr != nil {
		r.log.Warn("cache read failed, falling through", applogger.Error(cerr))
	}

	t, err := r.inner.ReadTable(ctx, table)
	if err != nil {
		return nil, err
	}

	if b, merr := json.Marshal(t); merr == nil {
		if serr := r.cache.SetBytes(key, b, r.ttl); serr != nil {
			r.log.Warn("cache write failed", applogger.Error(serr))
		}
	}
	return t, nil
}

func (r *CachedTableReader) Version(ctx context.Context, table string) (string, bool) {
	return r.inner.Version(ctx, table)
}

var _ domrepo.TableReader = (*CachedTableReader)(nil)

package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/infrastructure/metrics"
	"github.com/auric/goldvault/internal/usecase"
)

// PriceCache decorates a PriceSource with a short-lived cache. Conversion
// amounts tolerate prices up to the TTL old; the TTL must stay small.
type PriceCache struct {
	source  usecase.PriceSource
	cache   usecase.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewPriceCache creates a new PriceCache.
func NewPriceCache(source usecase.PriceSource, cache usecase.Cache, ttl time.Duration, m *metrics.Metrics) *PriceCache {
	return &PriceCache{
		source:  source,
		cache:   cache,
		ttl:     ttl,
		metrics: m,
	}
}

// CurrentGoldPrice returns the cached vendor price, falling through to the
// underlying source on a miss. Cache failures are treated as misses.
func (p *PriceCache) CurrentGoldPrice(ctx context.Context, vendorID int64) (decimal.Decimal, error) {
	key := "price:vendor:" + strconv.FormatInt(vendorID, 10)

	if raw, err := p.cache.Get(ctx, key); err == nil {
		if price, perr := decimal.NewFromString(string(raw)); perr == nil {
			if p.metrics != nil {
				p.metrics.PriceCacheHits.Inc()
			}
			return price, nil
		}
	}

	if p.metrics != nil {
		p.metrics.PriceCacheMisses.Inc()
	}

	price, err := p.source.CurrentGoldPrice(ctx, vendorID)
	if err != nil {
		return decimal.Zero, err
	}

	_ = p.cache.Set(ctx, key, []byte(price.String()), p.ttl)

	return price, nil
}

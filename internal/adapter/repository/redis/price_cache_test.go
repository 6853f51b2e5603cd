package redis

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type stubPriceSource struct {
	price decimal.Decimal
	calls int
}

func (s *stubPriceSource) CurrentGoldPrice(ctx context.Context, vendorID int64) (decimal.Decimal, error) {
	s.calls++
	return s.price, nil
}

func TestPriceCacheHitSkipsSource(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	source := &stubPriceSource{price: decimal.NewFromInt(5000)}
	pc := NewPriceCache(source, NewCache(client), time.Minute, nil)
	ctx := context.Background()

	price, err := pc.CurrentGoldPrice(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected 5000, got %s", price)
	}
	if source.calls != 1 {
		t.Fatalf("expected 1 source call, got %d", source.calls)
	}

	// Second read is served from the cache.
	if _, err := pc.CurrentGoldPrice(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected cached read, source called %d times", source.calls)
	}
}

func TestPriceCacheExpiryFallsThrough(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	source := &stubPriceSource{price: decimal.NewFromInt(5000)}
	pc := NewPriceCache(source, NewCache(client), time.Second, nil)
	ctx := context.Background()

	if _, err := pc.CurrentGoldPrice(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Second)
	source.price = decimal.NewFromInt(5100)

	price, err := pc.CurrentGoldPrice(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(decimal.NewFromInt(5100)) {
		t.Fatalf("expected refreshed price 5100, got %s", price)
	}
	if source.calls != 2 {
		t.Fatalf("expected 2 source calls, got %d", source.calls)
	}
}

// Package cache defines the verdict cache used to answer repeated evaluations
// of the same address without probing again.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go *
package cache

import (
	"context"

	"emailrep/pkg/domain"
)

// VerdictCache stores verdicts by normalized address.
type VerdictCache interface {
	// Get returns the cached verdict, or nil on a miss.
	Get(ctx context.Context, address string) (*domain.Verdict, error)
	// Set caches v for address until the cache's TTL expires.
	Set(ctx context.Context, address string, v *domain.Verdict) error
}

// Nop is a VerdictCache that never hits.
type Nop struct{}

func (Nop) Get(context.Context, string) (*domain.Verdict, error) { return nil, nil }

func (Nop) Set(context.Context, string, *domain.Verdict) error { return nil }

var _ VerdictCache = Nop{}

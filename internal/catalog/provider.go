package catalog

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/skarn-dev/rupture-planner/internal/domain"
)

// Provider owns the current catalog snapshot and performs atomic version
// switches. Readers always observe either the previous or the next
// consistent catalog, never a mix; the ready channel lets callers await
// the first successful load.
type Provider struct {
	current  atomic.Pointer[Catalog]
	ready    chan struct{}
	readyOne sync.Once
}

// NewProvider creates an empty Provider. Current returns
// ErrCatalogNotReady until the first Swap.
func NewProvider() *Provider {
	return &Provider{ready: make(chan struct{})}
}

// Swap atomically replaces the current catalog with a new snapshot.
func (p *Provider) Swap(c *Catalog) {
	if c == nil {
		return
	}
	p.current.Store(c)
	p.readyOne.Do(func() { close(p.ready) })
}

// Current returns the active catalog, or ErrCatalogNotReady before the
// first snapshot has been loaded.
func (p *Provider) Current() (*Catalog, error) {
	c := p.current.Load()
	if c == nil {
		return nil, domain.ErrCatalogNotReady
	}
	return c, nil
}

// Ready returns a channel closed once the first snapshot is available.
func (p *Provider) Ready() <-chan struct{} {
	return p.ready
}

// WaitReady blocks until a snapshot is available or the context is done.
func (p *Provider) WaitReady(ctx context.Context) error {
	select {
	case <-p.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

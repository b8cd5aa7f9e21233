// Package genres resolves opaque catalog genre ids to display names.
package genres

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rgray/cinelog/internal/domain"
)

// Resolver builds and caches the id-to-name genre map, one fetch per
// media kind per session. A failed fetch leaves any previously cached map
// in place; consumers see an empty map until a fetch succeeds and degrade
// to the fallback label.
type Resolver struct {
	catalog domain.CatalogRepository
	logger  *slog.Logger

	mu   sync.RWMutex
	maps map[domain.MediaKind]domain.GenreMap
}

// NewResolver creates a resolver over the given catalog
func NewResolver(catalog domain.CatalogRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		catalog: catalog,
		logger:  logger,
		maps:    make(map[domain.MediaKind]domain.GenreMap),
	}
}

// Map returns the cached genre map for the kind, fetching it on first
// use. The returned map is never nil and never an error: failure yields
// an empty map.
func (r *Resolver) Map(ctx context.Context, kind domain.MediaKind) domain.GenreMap {
	r.mu.RLock()
	if m, ok := r.maps[kind]; ok {
		r.mu.RUnlock()
		return m
	}
	r.mu.RUnlock()

	return r.Refresh(ctx, kind)
}

// Cached returns the current map without fetching. The map is empty when
// no fetch has succeeded yet.
func (r *Resolver) Cached(kind domain.MediaKind) domain.GenreMap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.maps[kind]; ok {
		return m
	}
	return domain.GenreMap{}
}

// Refresh rebuilds the map for the kind wholesale. On failure the
// previous map (possibly empty) is returned unchanged.
func (r *Resolver) Refresh(ctx context.Context, kind domain.MediaKind) domain.GenreMap {
	list, err := r.catalog.Genres(ctx, kind)
	if err != nil {
		r.logger.Error("failed to fetch genres", "error", err, "kind", kind)
		return r.Cached(kind)
	}

	m := make(domain.GenreMap, len(list))
	for _, g := range list {
		m[g.ID] = g.Name
	}

	r.mu.Lock()
	r.maps[kind] = m
	r.mu.Unlock()

	r.logger.Debug("loaded genre map", "kind", kind, "genres", len(m))
	return m
}

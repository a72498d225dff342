package catalog_cache

import (
	"sync"
	"time"

	"github.com/KP-365/TheWearDeck/models"
)

const TTL = 5 * time.Minute

// ── Flat catalog slice cache ─────────────────────────────────────────────────
// The feed's no-style-signal fallback reads the same bounded catalog slice
// for every user; caching it keeps that path off the database between
// catalog changes.

type catalogEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	catalogMu    sync.RWMutex
	catalogCache *catalogEntry
)

func GetCatalogSlice() ([]models.Product, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if catalogCache != nil && time.Since(catalogCache.fetchedAt) < TTL {
		return catalogCache.products, true
	}
	return nil, false
}

func SetCatalogSlice(products []models.Product) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalogCache = &catalogEntry{products: products, fetchedAt: time.Now()}
}

// ── Invalidate (call on any product create/delete) ───────────────────────────

func Invalidate() {
	catalogMu.Lock()
	catalogCache = nil
	catalogMu.Unlock()
}

package catalog_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KP-365/TheWearDeck/models"
)

func TestCatalogSliceRoundTrip(t *testing.T) {
	Invalidate()

	_, ok := GetCatalogSlice()
	assert.False(t, ok)

	products := []models.Product{{Name: "Relaxed Linen Shirt", Category: "tops", Price: 45}}
	SetCatalogSlice(products)

	cached, ok := GetCatalogSlice()
	assert.True(t, ok)
	assert.Equal(t, products, cached)

	Invalidate()
	_, ok = GetCatalogSlice()
	assert.False(t, ok)
}

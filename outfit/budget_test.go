package outfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetRangeContains(t *testing.T) {
	r := &BudgetRange{Min: 10, Max: 100}

	assert.True(t, r.Contains(10), "min is inclusive")
	assert.True(t, r.Contains(100), "max is inclusive")
	assert.True(t, r.Contains(55.5))
	assert.False(t, r.Contains(9.99))
	assert.False(t, r.Contains(100.01))
}

func TestBudgetRangeNilMeansUnconstrained(t *testing.T) {
	var r *BudgetRange

	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(1e12))
}

func TestBudgetRangeInvertedMatchesNothing(t *testing.T) {
	r := &BudgetRange{Min: 100, Max: 10}

	assert.False(t, r.Contains(50))
	assert.False(t, r.Contains(10))
	assert.False(t, r.Contains(100))
}

func TestFilterByBudget(t *testing.T) {
	items := products(
		prod("top", 5),
		prod("top", 50),
		prod("top", 500),
	)

	filtered := filterByBudget(items, &BudgetRange{Min: 10, Max: 100})
	assert.Len(t, filtered, 1)
	assert.Equal(t, 50.0, filtered[0].Price.Float64())

	// nil range passes everything through
	assert.Len(t, filterByBudget(items, nil), 3)
}

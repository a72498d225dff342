package outfit

import (
	"testing"

	"github.com/KP-365/TheWearDeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prod builds a minimal catalog product; Name doubles as a handle for
// asserting which items ended up in an outfit.
func prod(category string, price float64) models.Product {
	return models.Product{
		Name:     category,
		Category: category,
		Price:    models.Price(price),
	}
}

func products(ps ...models.Product) []models.Product {
	return ps
}

func categories(o Outfit) []string {
	out := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		out = append(out, item.Category)
	}
	return out
}

// ── Concrete scenarios ───────────────────────────────────────────────────────

// dress 40 + shoes 30 fits [0,100] without the bag, and the no-accessory
// option is tried first, so the bag never makes it into the outfit.
func TestGenerateOutfitsDressScenario(t *testing.T) {
	items := products(
		prod("dress", 40),
		prod("shoes", 30),
		prod("bag", 10),
	)

	outfits := GenerateOutfits(items, &BudgetRange{Min: 0, Max: 100}, 5)

	require.Len(t, outfits, 1)
	assert.Equal(t, TypeDress, outfits[0].OutfitType)
	assert.Equal(t, 70.0, outfits[0].TotalPrice)
	assert.Equal(t, []string{"dress", "shoes"}, categories(outfits[0]))
}

// With min_price above the bare combination the accessory option is the
// first one to pass, so the bag is included.
func TestGenerateOutfitsAccessoryRescuesMinPrice(t *testing.T) {
	items := products(
		prod("dress", 40),
		prod("shoes", 30),
		prod("bag", 10),
	)

	outfits := GenerateOutfits(items, &BudgetRange{Min: 75, Max: 100}, 5)

	require.Len(t, outfits, 1)
	assert.Equal(t, 80.0, outfits[0].TotalPrice)
	assert.Equal(t, []string{"dress", "shoes", "bag"}, categories(outfits[0]))
}

// Two tops against one bottom with no shoes or accessories: only the pair
// that lands inside the budget survives.
func TestGenerateOutfitsSeparatesScenario(t *testing.T) {
	items := products(
		prod("top", 20),
		prod("top", 25),
		prod("bottom", 30),
	)

	outfits := GenerateOutfits(items, &BudgetRange{Min: 0, Max: 50}, 10)

	require.Len(t, outfits, 1)
	assert.Equal(t, TypeSeparates, outfits[0].OutfitType)
	assert.Equal(t, 50.0, outfits[0].TotalPrice)
	assert.Equal(t, []string{"top", "bottom"}, categories(outfits[0]))
}

// ── Contract properties ──────────────────────────────────────────────────────

func TestGenerateOutfitsBudgetRespected(t *testing.T) {
	items := products(
		prod("dress", 40), prod("dress", 90),
		prod("top", 20), prod("top", 60),
		prod("bottom", 30), prod("bottom", 80),
		prod("shoes", 30), prod("shoes", 120),
		prod("bag", 10), prod("hat", 200),
	)
	budget := &BudgetRange{Min: 25, Max: 110}

	outfits := GenerateOutfits(items, budget, 50)

	require.NotEmpty(t, outfits)
	for _, o := range outfits {
		assert.True(t, budget.Contains(o.TotalPrice), "outfit at %.2f escapes the budget", o.TotalPrice)
	}
}

func TestGenerateOutfitsTotalPriceIsExactSum(t *testing.T) {
	items := products(
		prod("dress", 40.25),
		prod("shoes", 29.75),
		prod("belt", 14.50),
	)

	outfits := GenerateOutfits(items, nil, 10)

	require.NotEmpty(t, outfits)
	for _, o := range outfits {
		var sum float64
		for _, item := range o.Items {
			sum += item.Price.Float64()
		}
		assert.Equal(t, sum, o.TotalPrice)
	}
}

func TestGenerateOutfitsCapRespected(t *testing.T) {
	var items []models.Product
	for i := 0; i < 6; i++ {
		items = append(items, prod("dress", float64(10+i)))
		items = append(items, prod("shoes", float64(20+i)))
	}

	for _, n := range []int{0, 1, 3, 10, 1000} {
		outfits := GenerateOutfits(items, nil, n)
		assert.LessOrEqual(t, len(outfits), n, "num_outfits=%d", n)
	}

	assert.Empty(t, GenerateOutfits(items, nil, 0))
}

func TestGenerateOutfitsNegativeCap(t *testing.T) {
	items := products(
		prod("dress", 40),
		prod("shoes", 30),
	)

	// A negative cap must behave like zero, never panic on the final
	// truncation.
	for _, n := range []int{-1, -5} {
		assert.Empty(t, GenerateOutfits(items, nil, n), "num_outfits=%d", n)
		assert.Empty(t, GenerateOutfitsWithAdvancedFilter(items, nil, nil, n), "num_outfits=%d", n)
	}
}

func TestGenerateOutfitsComposition(t *testing.T) {
	items := products(
		prod("dress", 40),
		prod("top", 20), prod("bottom", 30),
		prod("shoes", 30), prod("bag", 10),
	)

	outfits := GenerateOutfits(items, nil, 50)
	require.NotEmpty(t, outfits)

	for _, o := range outfits {
		var tops, bottoms, dresses int
		for _, item := range o.Items {
			switch slot, _ := ClassifySlot(item.Category); slot {
			case SlotTop:
				tops++
			case SlotBottom:
				bottoms++
			case SlotDress:
				dresses++
			}
		}
		switch o.OutfitType {
		case TypeDress:
			assert.Equal(t, 1, dresses)
			assert.Zero(t, tops)
			assert.Zero(t, bottoms)
		case TypeSeparates:
			assert.Zero(t, dresses)
			assert.Equal(t, 1, tops)
			assert.Equal(t, 1, bottoms)
		default:
			t.Fatalf("unknown outfit type %q", o.OutfitType)
		}
		assert.GreaterOrEqual(t, len(o.Items), 2)
		assert.LessOrEqual(t, len(o.Items), 4)
	}
}

func TestGenerateOutfitsEmptyInput(t *testing.T) {
	assert.Empty(t, GenerateOutfits(nil, nil, 10))
	assert.Empty(t, GenerateOutfits([]models.Product{}, &BudgetRange{Min: 0, Max: 100}, 10))
}

// Unclassifiable categories never error; they are just invisible to the
// enumerator.
func TestGenerateOutfitsUnclassifiableDropped(t *testing.T) {
	items := products(
		prod("sofa", 500),
		prod("dress", 40),
		prod("garden gnome", 25),
	)

	outfits := GenerateOutfits(items, nil, 10)

	require.Len(t, outfits, 1)
	assert.Equal(t, []string{"dress"}, categories(outfits[0]))
}

// Dress outfits always precede separates in the result.
func TestGenerateOutfitsDressOrderedFirst(t *testing.T) {
	items := products(
		prod("top", 20), prod("bottom", 30),
		prod("dress", 40),
	)

	outfits := GenerateOutfits(items, nil, 10)

	require.Len(t, outfits, 2)
	assert.Equal(t, TypeDress, outfits[0].OutfitType)
	assert.Equal(t, TypeSeparates, outfits[1].OutfitType)
}

// Empty shoe and accessory pools do not block generation; the sentinel
// keeps bare combinations reachable.
func TestGenerateOutfitsSentinelPools(t *testing.T) {
	outfits := GenerateOutfits(products(prod("dress", 40)), nil, 10)

	require.Len(t, outfits, 1)
	assert.Equal(t, []string{"dress"}, categories(outfits[0]))
	assert.Equal(t, 40.0, outfits[0].TotalPrice)
}

// The dress pass windows three accessories, the separates pass only two.
func TestGenerateOutfitsAccessoryWindowAsymmetry(t *testing.T) {
	accessories := products(
		prod("bag", 100), prod("hat", 100), prod("belt", 100), prod("scarf", 5),
	)

	// Only an accessory priced ≤ 10 lets the outfit meet min=45. The
	// fourth accessory (scarf, 5) is beyond both windows, so neither pass
	// can use it.
	dressItems := append(products(prod("dress", 40)), accessories...)
	assert.Empty(t, GenerateOutfits(dressItems, &BudgetRange{Min: 45, Max: 50}, 10))

	// The third accessory (belt) is inside the dress window but outside
	// the separates window.
	reachable := products(
		prod("dress", 40),
		prod("bag", 2), prod("hat", 3), prod("belt", 7),
	)
	outfits := GenerateOutfits(reachable, &BudgetRange{Min: 46, Max: 50}, 10)
	require.Len(t, outfits, 1)
	assert.Equal(t, 47.0, outfits[0].TotalPrice, "third accessory reachable in dress pass")

	sep := products(
		prod("top", 20), prod("bottom", 20),
		prod("bag", 2), prod("hat", 3), prod("belt", 7),
	)
	assert.Empty(t, GenerateOutfits(sep, &BudgetRange{Min: 46, Max: 50}, 10),
		"third accessory must be out of reach for the separates pass")

	sepReachable := GenerateOutfits(sep, &BudgetRange{Min: 43, Max: 50}, 10)
	require.Len(t, sepReachable, 1)
	assert.Equal(t, 43.0, sepReachable[0].TotalPrice, "second accessory reachable in separates pass")
}

// Determinism: same input, same output, input order preserved in pools.
func TestGenerateOutfitsDeterministic(t *testing.T) {
	items := products(
		prod("dress", 40), prod("dress", 60),
		prod("shoes", 30), prod("shoes", 25),
		prod("bag", 10),
	)

	first := GenerateOutfits(items, &BudgetRange{Min: 0, Max: 200}, 10)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GenerateOutfits(items, &BudgetRange{Min: 0, Max: 200}, 10))
	}
}

// Inputs are never mutated and outfit items are the caller's records.
func TestGenerateOutfitsInputUntouched(t *testing.T) {
	items := products(prod("dress", 40), prod("shoes", 30))
	snapshot := make([]models.Product, len(items))
	copy(snapshot, items)

	outfits := GenerateOutfits(items, nil, 10)

	assert.Equal(t, snapshot, items)
	require.NotEmpty(t, outfits)
	assert.Equal(t, items[0], outfits[0].Items[0])
}

// ── Advanced mode ────────────────────────────────────────────────────────────

func TestAdvancedFilterNarrowsSlot(t *testing.T) {
	items := products(
		prod("top", 20), prod("top", 25),
		prod("bottom", 30),
		prod("dress", 40),
	)

	// A tops budget that excludes every top kills all separates outfits
	// but leaves dress outfits alone.
	outfits := GenerateOutfitsWithAdvancedFilter(items, nil, map[string]BudgetRange{
		BudgetKeyTops: {Min: 0, Max: 0},
	}, 10)

	require.Len(t, outfits, 1)
	assert.Equal(t, TypeDress, outfits[0].OutfitType)
}

func TestAdvancedFilterPerSlotAndGlobal(t *testing.T) {
	items := products(
		prod("top", 20), prod("top", 80),
		prod("bottom", 30), prod("bottom", 90),
		prod("shoes", 30), prod("shoes", 150),
	)

	outfits := GenerateOutfitsWithAdvancedFilter(items,
		&BudgetRange{Min: 0, Max: 100},
		map[string]BudgetRange{
			BudgetKeyTops:    {Min: 0, Max: 50},
			BudgetKeyBottoms: {Min: 0, Max: 50},
			BudgetKeyShoes:   {Min: 0, Max: 100},
		}, 10)

	require.Len(t, outfits, 1)
	assert.Equal(t, 80.0, outfits[0].TotalPrice)
	for _, item := range outfits[0].Items {
		assert.LessOrEqual(t, item.Price.Float64(), 100.0)
	}
}

func TestAdvancedFilterNilBudgetsEqualsSimpleMode(t *testing.T) {
	items := products(
		prod("dress", 40), prod("top", 20), prod("bottom", 30),
		prod("shoes", 30), prod("bag", 10),
	)
	budget := &BudgetRange{Min: 0, Max: 120}

	assert.Equal(t,
		GenerateOutfits(items, budget, 10),
		GenerateOutfitsWithAdvancedFilter(items, budget, nil, 10),
	)
}

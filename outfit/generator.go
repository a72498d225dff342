package outfit

import "github.com/KP-365/TheWearDeck/models"

// Category-budget keys accepted by the advanced filter. These are the
// plural names the mobile client sends, one per slot.
const (
	BudgetKeyTops        = "tops"
	BudgetKeyBottoms     = "bottoms"
	BudgetKeyDresses     = "dresses"
	BudgetKeyShoes       = "shoes"
	BudgetKeyAccessories = "accessories"
)

// GenerateOutfits buckets products into wardrobe slots and enumerates
// combinations under a single global budget. A nil budget means
// unconstrained. The result never exceeds numOutfits.
func GenerateOutfits(products []models.Product, userBudget *BudgetRange, numOutfits int) []Outfit {
	if numOutfits < 0 {
		numOutfits = 0
	}
	p := bucketProducts(products)
	outfits := enumerate(p, userBudget, numOutfits)
	if len(outfits) > numOutfits {
		outfits = outfits[:numOutfits]
	}
	return outfits
}

// GenerateOutfitsWithAdvancedFilter additionally applies per-slot budgets
// to each pool before enumeration. Slots missing from categoryBudgets pass
// through unfiltered; the global budget behaves exactly as in
// GenerateOutfits.
func GenerateOutfitsWithAdvancedFilter(products []models.Product, totalBudget *BudgetRange, categoryBudgets map[string]BudgetRange, numOutfits int) []Outfit {
	if numOutfits < 0 {
		numOutfits = 0
	}
	p := bucketProducts(products)

	slotBudget := func(key string) *BudgetRange {
		if categoryBudgets == nil {
			return nil
		}
		if b, ok := categoryBudgets[key]; ok {
			return &b
		}
		return nil
	}

	p.tops = filterByBudget(p.tops, slotBudget(BudgetKeyTops))
	p.bottoms = filterByBudget(p.bottoms, slotBudget(BudgetKeyBottoms))
	p.dresses = filterByBudget(p.dresses, slotBudget(BudgetKeyDresses))
	p.shoes = filterByBudget(p.shoes, slotBudget(BudgetKeyShoes))
	p.accessories = filterByBudget(p.accessories, slotBudget(BudgetKeyAccessories))

	outfits := enumerate(p, totalBudget, numOutfits)
	if len(outfits) > numOutfits {
		outfits = outfits[:numOutfits]
	}
	return outfits
}

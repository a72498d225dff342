package outfit

import "github.com/KP-365/TheWearDeck/models"

// BudgetRange is an inclusive [Min, Max] price constraint. A nil
// *BudgetRange means unconstrained. Min > Max is not rejected; such a
// range just matches nothing.
type BudgetRange struct {
	Min float64 `json:"min_price"`
	Max float64 `json:"max_price"`
}

// Contains reports whether price falls inside the range. The nil receiver
// is the "no budget" case and always matches.
func (r *BudgetRange) Contains(price float64) bool {
	if r == nil {
		return true
	}
	return r.Min <= price && price <= r.Max
}

// filterByBudget keeps the products whose price the range admits. With a
// nil range the input slice is returned as-is.
func filterByBudget(products []models.Product, r *BudgetRange) []models.Product {
	if r == nil {
		return products
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if r.Contains(p.Price.Float64()) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

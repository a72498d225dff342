package outfit

import "github.com/KP-365/TheWearDeck/models"

// Outfit types. A dress outfit is one dress plus optional shoe and
// accessory; a separates outfit is exactly one top and one bottom plus the
// same optional extras.
const (
	TypeDress     = "dress"
	TypeSeparates = "separates"
)

// Accessory windows per pass. The dress pass considers one more accessory
// option than the separates pass.
const (
	dressAccessoryWindow     = 3
	separatesAccessoryWindow = 2
)

// Outfit is an assembled combination. Items reference the caller's product
// records unchanged.
type Outfit struct {
	Items      []models.Product `json:"items"`
	TotalPrice float64          `json:"total_price"`
	OutfitType string           `json:"outfit_type"`
}

// pools are the classified, pre-filtered product lists the enumerator
// draws from. Order within each pool is the input order.
type pools struct {
	tops        []models.Product
	bottoms     []models.Product
	dresses     []models.Product
	shoes       []models.Product
	accessories []models.Product
}

// bucketProducts classifies products into pools. Unclassifiable categories
// are dropped silently.
func bucketProducts(products []models.Product) pools {
	var p pools
	for _, product := range products {
		slot, ok := ClassifySlot(product.Category)
		if !ok {
			continue
		}
		switch slot {
		case SlotTop:
			p.tops = append(p.tops, product)
		case SlotBottom:
			p.bottoms = append(p.bottoms, product)
		case SlotDress:
			p.dresses = append(p.dresses, product)
		case SlotShoe:
			p.shoes = append(p.shoes, product)
		case SlotAccessory:
			p.accessories = append(p.accessories, product)
		}
	}
	return p
}

// optionList returns the pool itself, or a single nil sentinel when the
// pool is empty so shoeless/accessory-less outfits stay reachable without
// special-casing the loop structure.
func optionList(pool []models.Product) []*models.Product {
	if len(pool) == 0 {
		return []*models.Product{nil}
	}
	opts := make([]*models.Product, len(pool))
	for i := range pool {
		opts[i] = &pool[i]
	}
	return opts
}

// accessoryOptions is "no accessory" followed by the first window entries
// of the accessory pool. The no-accessory option always comes first, so it
// wins whenever the bare combination already fits the budget.
func accessoryOptions(accessories []models.Product, window int) []*models.Product {
	opts := []*models.Product{nil}
	for i := 0; i < len(accessories) && i < window; i++ {
		opts = append(opts, &accessories[i])
	}
	return opts
}

// enumerate produces up to numOutfits outfits from the pools under the
// global budget. Dress-based outfits are generated first, then separates;
// within a (garment, shoe) combination the first accessory option that
// lands inside the budget is taken and the rest are never tried.
func enumerate(p pools, budget *BudgetRange, numOutfits int) []Outfit {
	if numOutfits <= 0 {
		return []Outfit{}
	}

	outfits := make([]Outfit, 0, numOutfits)

	// Dress pass.
dressPass:
	for di := range p.dresses {
		dress := &p.dresses[di]
		for _, shoe := range optionList(p.shoes) {
			if len(outfits) >= numOutfits {
				break dressPass
			}
			base := []*models.Product{dress}
			basePrice := dress.Price.Float64()
			if shoe != nil {
				base = append(base, shoe)
				basePrice += shoe.Price.Float64()
			}
			if o, ok := firstFit(base, basePrice, p.accessories, dressAccessoryWindow, budget, TypeDress); ok {
				outfits = append(outfits, o)
			}
		}
	}

	// Separates pass.
separatesPass:
	for ti := range p.tops {
		top := &p.tops[ti]
		for bi := range p.bottoms {
			bottom := &p.bottoms[bi]
			pairPrice := top.Price.Float64() + bottom.Price.Float64()
			for _, shoe := range optionList(p.shoes) {
				if len(outfits) >= numOutfits {
					break separatesPass
				}
				base := []*models.Product{top, bottom}
				basePrice := pairPrice
				if shoe != nil {
					base = append(base, shoe)
					basePrice += shoe.Price.Float64()
				}
				if o, ok := firstFit(base, basePrice, p.accessories, separatesAccessoryWindow, budget, TypeSeparates); ok {
					outfits = append(outfits, o)
				}
			}
		}
	}

	if len(outfits) > numOutfits {
		outfits = outfits[:numOutfits]
	}
	return outfits
}

// firstFit tries the accessory options in order against the global budget
// and builds an outfit from the first one that passes. Later options are
// not considered even if they would also pass.
func firstFit(base []*models.Product, basePrice float64, accessories []models.Product, window int, budget *BudgetRange, outfitType string) (Outfit, bool) {
	for _, accessory := range accessoryOptions(accessories, window) {
		total := basePrice
		if accessory != nil {
			total += accessory.Price.Float64()
		}
		if !budget.Contains(total) {
			continue
		}
		items := make([]models.Product, 0, len(base)+1)
		for _, item := range base {
			items = append(items, *item)
		}
		if accessory != nil {
			items = append(items, *accessory)
		}
		return Outfit{Items: items, TotalPrice: total, OutfitType: outfitType}, true
	}
	return Outfit{}, false
}

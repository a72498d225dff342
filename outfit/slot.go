// Package outfit assembles multi-item outfit combinations from a flat
// product list under budget constraints. Everything in here is pure,
// deterministic computation over in-memory data: no I/O, no shared state,
// safe to call from any number of request handlers at once.
package outfit

import "strings"

// Slot is one of the five wardrobe positions a product can fill.
type Slot int

const (
	SlotDress Slot = iota
	SlotTop
	SlotBottom
	SlotShoe
	SlotAccessory
)

func (s Slot) String() string {
	switch s {
	case SlotDress:
		return "dress"
	case SlotTop:
		return "top"
	case SlotBottom:
		return "bottom"
	case SlotShoe:
		return "shoe"
	case SlotAccessory:
		return "accessory"
	}
	return "unknown"
}

// Synonym sets per slot. Membership is exact after lower-casing; the sets
// are disjoint by construction (pinned by a test) and the dress family owns
// one-piece garments like jumpsuits and rompers.
var slotSynonyms = map[Slot][]string{
	SlotDress:     {"dress", "dresses", "jumpsuit", "romper"},
	SlotTop:       {"top", "tops", "shirt", "blouse", "sweater", "t-shirt"},
	SlotBottom:    {"bottom", "bottoms", "pants", "jeans", "shorts", "skirt"},
	SlotShoe:      {"shoes", "shoe", "footwear", "sneakers", "boots", "heels"},
	SlotAccessory: {"accessory", "accessories", "bag", "jewelry", "hat", "belt", "scarf"},
}

// classifyOrder fixes the priority when a label were ever to satisfy two
// sets: dress family wins over separates.
var classifyOrder = []Slot{SlotDress, SlotTop, SlotBottom, SlotShoe, SlotAccessory}

// ClassifySlot maps a free-text category label to a wardrobe slot.
// Labels matching no synonym set return ok=false and are simply left out
// of outfit consideration; that is not an error.
func ClassifySlot(label string) (Slot, bool) {
	lower := strings.ToLower(label)
	for _, slot := range classifyOrder {
		for _, syn := range slotSynonyms[slot] {
			if lower == syn {
				return slot, true
			}
		}
	}
	return 0, false
}

package outfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySlot(t *testing.T) {
	cases := []struct {
		label string
		slot  Slot
		ok    bool
	}{
		{"dress", SlotDress, true},
		{"Dresses", SlotDress, true},
		{"JUMPSUIT", SlotDress, true},
		{"romper", SlotDress, true},
		{"top", SlotTop, true},
		{"T-Shirt", SlotTop, true},
		{"blouse", SlotTop, true},
		{"jeans", SlotBottom, true},
		{"Skirt", SlotBottom, true},
		{"sneakers", SlotShoe, true},
		{"HEELS", SlotShoe, true},
		{"bag", SlotAccessory, true},
		{"scarf", SlotAccessory, true},
		{"", 0, false},
		{"couch", 0, false},
		{"t shirt", 0, false},  // exact synonym match, no normalization
		{" dress", 0, false},   // whitespace is not trimmed
		{"shirts", 0, false},   // not in the set
	}

	for _, tc := range cases {
		slot, ok := ClassifySlot(tc.label)
		assert.Equal(t, tc.ok, ok, "label %q", tc.label)
		if tc.ok {
			assert.Equal(t, tc.slot, slot, "label %q", tc.label)
		}
	}
}

// The synonym sets must stay disjoint: a label landing in two slots would
// let the same product reappear across enumeration passes.
func TestSlotSynonymsDisjoint(t *testing.T) {
	seen := map[string]Slot{}
	for slot, synonyms := range slotSynonyms {
		for _, syn := range synonyms {
			if prev, dup := seen[syn]; dup {
				t.Fatalf("synonym %q appears in both %s and %s", syn, prev, slot)
			}
			seen[syn] = slot
		}
	}
}

func TestSlotString(t *testing.T) {
	assert.Equal(t, "dress", SlotDress.String())
	assert.Equal(t, "top", SlotTop.String())
	assert.Equal(t, "bottom", SlotBottom.String())
	assert.Equal(t, "shoe", SlotShoe.String())
	assert.Equal(t, "accessory", SlotAccessory.String())
}

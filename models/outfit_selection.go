package models

// SlotSelection is the outcome of filling one slot. Item is nil when no candidate
// category of the slot was present in the catalog.
type SlotSelection struct {
	Slot     string  `json:"slot"`
	Category string  `json:"category,omitempty"`
	Item     *Item   `json:"item"`
	Score    float64 `json:"score"`
}

// OutfitSelection holds one entry per slot, in slot plan order
type OutfitSelection struct {
	Slots          []SlotSelection `json:"slots"`
	SelectedColors []Color         `json:"selectedColors"`
}

// Paths returns the source path of each slot's item, "" where nothing was selected
func (s OutfitSelection) Paths() []string {
	paths := make([]string, len(s.Slots))
	for i, slot := range s.Slots {
		if slot.Item != nil {
			paths[i] = slot.Item.Path
		}
	}
	return paths
}

// Names returns the file name of each slot's item, nil where nothing was selected
func (s OutfitSelection) Names() []*string {
	names := make([]*string, len(s.Slots))
	for i, slot := range s.Slots {
		if slot.Item != nil {
			name := slot.Item.Name
			names[i] = &name
		}
	}
	return names
}

// Filled returns the number of slots that received an item
func (s OutfitSelection) Filled() int {
	n := 0
	for _, slot := range s.Slots {
		if slot.Item != nil {
			n++
		}
	}
	return n
}

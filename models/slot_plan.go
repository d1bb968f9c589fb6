package models

// Slot is a named outfit role with the categories that can fill it, in priority order
type Slot struct {
	Name       string   `json:"name"`
	Candidates []string `json:"candidates"`
}

// SlotPlan is the ordered list of slots to fill. Slot order also decides which
// colors influence later slots.
type SlotPlan []Slot

// DefaultSlotPlan returns the fixed outfit plan. A new copy is returned on every call.
func DefaultSlotPlan() SlotPlan {
	return SlotPlan{
		{Name: "Top", Candidates: []string{"top", "tshirt", "blouse", "hoodie", "shirt"}},
		{Name: "Bottom", Candidates: []string{"jeans", "trousers", "bottom", "skirt", "pants"}},
		{Name: "Coat", Candidates: []string{"coat", "jacket"}},
		{Name: "Shoes", Candidates: []string{"shoes", "heels", "sneakers"}},
		{Name: "Accessories", Candidates: []string{"accessories", "jewelry", "handbag", "watch", "sunglasses", "bracelet"}},
	}
}

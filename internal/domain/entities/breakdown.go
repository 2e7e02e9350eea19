package entities

// AddOnLineItem is a named, priced charge triggered by one configuration
// choice. Two independently matched rules that happen to produce identically
// named items both appear; items are never deduplicated.

type AddOnLineItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// PriceBreakdown is the itemized result of pricing a selection.
//
// It is a derived value: recomputed deterministically from the current
// selection on every read and never stored. AddOns are ordered by service
// selection order, then by rule order within a service.
// Total == BasePrice + sum of add-on prices, by construction.

type PriceBreakdown struct {
	BasePrice int             `json:"base_price"`
	AddOns    []AddOnLineItem `json:"add_ons"`
	Total     int             `json:"total"`
}

// UpsellOption is a suggested, not-yet-purchased enhancement. Advisory only:
// accepting one is recorded on the intake but does not change the breakdown.

type UpsellOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Icon        string `json:"icon"`
	Popular     bool   `json:"popular,omitempty"`
}

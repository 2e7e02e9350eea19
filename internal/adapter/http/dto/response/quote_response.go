package response

import (
	"content_factory/internal/domain/entities"
	"content_factory/pkg"
)

type AddOnResponse struct {
	Name         string `json:"name"`
	Price        int    `json:"price"`
	DisplayPrice string `json:"display_price"`
}

// QuoteResponse is the itemized breakdown shown by the live price preview.
// Prices are whole Naira integers; display strings are pre-formatted NGN.
type QuoteResponse struct {
	BasePrice    int             `json:"base_price"`
	AddOns       []AddOnResponse `json:"add_ons"`
	Total        int             `json:"total"`
	DisplayTotal string          `json:"display_total"`
}

func FromBreakdown(b entities.PriceBreakdown) QuoteResponse {
	addOns := make([]AddOnResponse, 0, len(b.AddOns))
	for _, a := range b.AddOns {
		addOns = append(addOns, AddOnResponse{
			Name:         a.Name,
			Price:        a.Price,
			DisplayPrice: pkg.FormatNGN(a.Price),
		})
	}
	return QuoteResponse{
		BasePrice:    b.BasePrice,
		AddOns:       addOns,
		Total:        b.Total,
		DisplayTotal: pkg.FormatNGN(b.Total),
	}
}

type UpsellResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int    `json:"price"`
	DisplayPrice string `json:"display_price"`
	Icon         string `json:"icon"`
	Popular      bool   `json:"popular"`
}

func FromUpsellOptions(options []entities.UpsellOption) []UpsellResponse {
	out := make([]UpsellResponse, 0, len(options))
	for _, o := range options {
		out = append(out, UpsellResponse{
			ID:           o.ID,
			Name:         o.Name,
			Description:  o.Description,
			Price:        o.Price,
			DisplayPrice: pkg.FormatNGN(o.Price),
			Icon:         o.Icon,
			Popular:      o.Popular,
		})
	}
	return out
}

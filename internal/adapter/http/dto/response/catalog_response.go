package response

import (
	"content_factory/internal/domain/entities"
	"content_factory/pkg"
)

type ServiceResponse struct {
	ID               entities.ServiceID `json:"id"`
	Name             string             `json:"name"`
	BasePrice        int                `json:"base_price"`
	DisplayBasePrice string             `json:"display_base_price"`
	Description      string             `json:"description"`
	Icon             string             `json:"icon"`
}

func FromCatalogEntry(e entities.ServiceCatalogEntry) ServiceResponse {
	return ServiceResponse{
		ID:               e.ID,
		Name:             e.Name,
		BasePrice:        e.BasePrice,
		DisplayBasePrice: pkg.FormatNGN(e.BasePrice),
		Description:      e.Description,
		Icon:             e.Icon,
	}
}

func FromCatalog(entries []entities.ServiceCatalogEntry) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromCatalogEntry(e))
	}
	return out
}

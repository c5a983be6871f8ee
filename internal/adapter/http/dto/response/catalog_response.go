package response

import "pizzamaster/internal/domain/entities"

type SizeVariantResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type CatalogItemResponse struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Category string                `json:"category,omitempty"`
	Pricing  string                `json:"pricing"`
	Price    int64                 `json:"price,omitempty"`
	Sizes    []SizeVariantResponse `json:"sizes,omitempty"`
	Disabled bool                  `json:"disabled"`
}

func FromCatalogItem(i entities.CatalogItem) CatalogItemResponse {
	res := CatalogItemResponse{
		ID:       i.ID,
		Name:     i.Name,
		Category: i.Category,
		Pricing:  string(i.Pricing),
		Price:    i.Price,
		Disabled: i.Disabled,
	}
	for _, s := range i.Sizes {
		res.Sizes = append(res.Sizes, SizeVariantResponse{Name: s.Name, Price: s.Price})
	}
	return res
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromCatalogItem(i))
	}
	return out
}

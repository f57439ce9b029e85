package domain

// Product represents a fragrance in the catalog
type Product struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Keynotes     []Keynote        `json:"keynotes"`
	CapacityInML []CapacityOption `json:"capacityInML"`
}

// Keynote is a single fragrance note a product is tagged with (e.g. "Rose Petal")
type Keynote struct {
	Name string `json:"name"`
}

// CapacityOption is one purchasable bottle size with its price.
// A product may have zero capacity options, in which case it has no listed price.
type CapacityOption struct {
	Volume int `json:"volume"` // milliliters
	Price  int `json:"price"`
}

// FirstPrice returns the price of the first listed capacity option.
// The second return value is false when the product has no capacity options.
func (p *Product) FirstPrice() (int, bool) {
	if len(p.CapacityInML) == 0 {
		return 0, false
	}
	return p.CapacityInML[0].Price, true
}

// KeynoteNames returns the product's keynote names in stored order
func (p *Product) KeynoteNames() []string {
	names := make([]string, 0, len(p.Keynotes))
	for _, k := range p.Keynotes {
		names = append(names, k.Name)
	}
	return names
}

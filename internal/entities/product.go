package entities

type Variant struct {
	ID        int64
	ProductID int64
	SKU       string
	Price     int
	Cost      int
}

type Product struct {
	ID         int64
	Name       string
	CategoryID int64
	Variants   []Variant
}

func (p Product) VariantBySKU(sku string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.SKU == sku {
			return v, true
		}
	}
	return Variant{}, false
}

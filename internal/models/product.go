package models

// Product represents a product in the catalog.
// IDs are assigned by the server: max existing ID + 1, or 1 when the
// collection is empty.
type Product struct {
	ID      int     `json:"id"`
	Name    string  `json:"name" validate:"required"`
	Price   float64 `json:"price" validate:"gte=0"`
	InStock bool    `json:"inStock"`
}

// CreateProductRequest is the payload for POST /products. Price and InStock
// are pointers so that zero values (0, false) still satisfy "required".
type CreateProductRequest struct {
	Name    string   `json:"name" validate:"required"`
	Price   *float64 `json:"price" validate:"required,gte=0"`
	InStock *bool    `json:"inStock" validate:"required"`
}

// UpdateProductRequest is the payload for PUT /products/:id. Every field is
// optional; a field that is present must pass the same check as on create,
// and absent fields are left unchanged.
type UpdateProductRequest struct {
	Name    *string  `json:"name" validate:"omitempty,min=1"`
	Price   *float64 `json:"price" validate:"omitempty,gte=0"`
	InStock *bool    `json:"inStock"`
}

// Product builds a Product from a create request. The ID is left zero for
// the repository to assign.
func (r CreateProductRequest) Product() Product {
	return Product{
		Name:    r.Name,
		Price:   *r.Price,
		InStock: *r.InStock,
	}
}

// Apply overlays the request's present fields onto p.
func (r UpdateProductRequest) Apply(p *Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
}

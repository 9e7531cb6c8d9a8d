// internal/models/product_dto.go
package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductDTO is the request body shape for creating and updating products.
// It never carries an identifier; updates address the record by URL.
type ProductDTO struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func NewProductDTO(name, description string, price decimal.Decimal) ProductDTO {
	return ProductDTO{
		Name:        name,
		Description: description,
		Price:       price,
	}
}

func (d ProductDTO) Equal(other ProductDTO) bool {
	return d.Name == other.Name &&
		d.Description == other.Description &&
		d.Price.Equal(other.Price)
}

// ToProduct builds an unpersisted Product; the store assigns its ID.
func (d ProductDTO) ToProduct() Product {
	return Product{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
	}
}

// ApplyTo overwrites the business fields of p and leaves p.ID alone.
func (d ProductDTO) ApplyTo(p *Product) {
	p.Name = d.Name
	p.Description = d.Description
	p.Price = d.Price
}

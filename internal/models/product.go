// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

// Product is the stored form of a catalog entry. ID is assigned by the
// database on insert and is zero until then.
type Product struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"size:255"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric"`
}

func NewProduct(id uint64, name, description string, price decimal.Decimal) Product {
	return Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
	}
}

func (Product) TableName() string {
	return "products"
}

func (p Product) IsPersisted() bool {
	return p.ID != 0
}

// Equal compares all fields. Prices are compared by value, so 9.9 equals 9.90.
func (p Product) Equal(other Product) bool {
	return p.ID == other.ID &&
		p.Name == other.Name &&
		p.Description == other.Description &&
		p.Price.Equal(other.Price)
}

// ToDTO drops the identifier.
func (p Product) ToDTO() ProductDTO {
	return ProductDTO{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

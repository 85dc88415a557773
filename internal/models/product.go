package models

// ProductType определяет тип товара на маркетплейсе
type ProductType string

const (
	ProductPhysical ProductType = "PHYSICAL"
	ProductDigital  ProductType = "DIGITAL"
	ProductCourse   ProductType = "COURSE"
)

// Product представляет товар на маркетплейсе
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Type        ProductType `json:"type"`
	Category    string      `json:"category"`
	Images      []string    `json:"images"`
	Rating      float64     `json:"rating"`
	Stock       int         `json:"stock"`
	VendorID    string      `json:"vendor_id"`
}

package model

import "gorm.io/gorm"

// Medicine represents a medicine entity
// @Description Medicine information
type Medicine struct {
	gorm.Model
	Name  string  `json:"name" gorm:"not null" example:"Paracetamol"`
	Type  string  `json:"type" example:"Tablet"`
	Price float64 `json:"price" gorm:"type:decimal(10,2)" example:"12.50"`
	Stock int     `json:"stock" example:"120"`
}

func (m *Medicine) Validate() error {
	if m.Name == "" {
		return &ValidationError{Field: "name", Value: "", Allowed: "non-empty"}
	}
	if m.Price < 0 {
		return &ValidationError{Field: "price", Value: m.Price, Allowed: ">= 0"}
	}
	if m.Stock < 0 {
		return &ValidationError{Field: "stock", Value: m.Stock, Allowed: ">= 0"}
	}
	return nil
}

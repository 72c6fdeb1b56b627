package domain

import "github.com/shopspring/decimal"

type Hall struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Capacity    int             `json:"capacity"`
	BasePrice   decimal.Decimal `json:"base_price"`
	IsActive    bool            `json:"is_active"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     int             `json:"category"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsAvailable  bool            `json:"is_available"`
}

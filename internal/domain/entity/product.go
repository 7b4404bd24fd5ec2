package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. CurrentStock solo se modifica
// vía transacciones de stock; ReorderPoint es un umbral consultivo, no se aplica.
type Product struct {
	ID           string
	Name         string
	Description  string
	CategoryID   string
	CurrentStock int
	ReorderPoint int
	Price        decimal.Decimal
	SKU          string // código único
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Category se llena en lecturas con join; nil en escrituras.
	Category *Category
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,max=200"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"categoryId" validate:"required,uuid"`
	CurrentStock int             `json:"currentStock" validate:"min=0"`
	ReorderPoint int             `json:"reorderPoint" validate:"min=0"`
	Price        decimal.Decimal `json:"price"`
	SKU          string          `json:"sku" validate:"required,max=50"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// CurrentStock no se expone: el stock solo cambia vía transacciones.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	CategoryID   *string          `json:"categoryId,omitempty"`
	ReorderPoint *int             `json:"reorderPoint,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	SKU          *string          `json:"sku,omitempty"`
}

// ProductResponse salida de un producto con su categoría anidada.
type ProductResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	CategoryID   string            `json:"categoryId"`
	CurrentStock int               `json:"currentStock"`
	ReorderPoint int               `json:"reorderPoint"`
	Price        decimal.Decimal   `json:"price"`
	SKU          string            `json:"sku"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	Category     *CategoryResponse `json:"category,omitempty"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden de compra.
type OrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSupplierOrderRequest entrada para crear una orden de compra.
type CreateSupplierOrderRequest struct {
	SupplierID string             `json:"supplierId" validate:"required,uuid"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateSupplierOrderRequest entrada para mutar el estado de la orden.
type UpdateSupplierOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING RECEIVED CANCELLED"`
}

// OrderItemResponse línea de orden en respuestas.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// SupplierOrderResponse salida de una orden con proveedor y líneas.
type SupplierOrderResponse struct {
	ID         string              `json:"id"`
	SupplierID string              `json:"supplierId"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
	Supplier   *SupplierResponse   `json:"supplier,omitempty"`
	Items      []OrderItemResponse `json:"items"`
}

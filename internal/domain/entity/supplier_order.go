package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para SupplierOrder. El estado se muta independiente del stock.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusReceived  = "RECEIVED"
	OrderStatusCancelled = "CANCELLED"
)

// ValidOrderStatus indica si el estado pertenece al conjunto cerrado.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusReceived, OrderStatusCancelled:
		return true
	}
	return false
}

// SupplierOrder representa una orden de compra a un proveedor con sus líneas.
type SupplierOrder struct {
	ID         string
	SupplierID string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Supplier e Items se llenan en lecturas con join.
	Supplier *Supplier
	Items    []SupplierOrderItem
}

// SupplierOrderItem es una línea de la orden: producto, cantidad y precio pactado.
type SupplierOrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     decimal.Decimal

	Product *Product
}

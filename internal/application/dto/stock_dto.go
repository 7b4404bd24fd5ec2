package dto

import "time"

// CreateStockTransactionRequest entrada para registrar un movimiento de stock.
// Quantity siempre positiva; Type decide el signo (STOCK_IN suma, STOCK_OUT resta).
type CreateStockTransactionRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Type      string `json:"type" validate:"required,oneof=STOCK_IN STOCK_OUT"`
	Notes     string `json:"notes" validate:"omitempty,max=500"`
}

// StockTransactionResponse salida de una transacción con producto y usuario anidados.
type StockTransactionResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	UserID    string           `json:"userId"`
	Quantity  int              `json:"quantity"`
	Type      string           `json:"type"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	Product   *ProductResponse `json:"product,omitempty"`
	User      *UserResponse    `json:"user,omitempty"`
}

package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeStockIn  = "STOCK_IN"  // entrada: suma al stock
	TransactionTypeStockOut = "STOCK_OUT" // salida: resta del stock
)

// ValidTransactionType indica si el tipo pertenece al conjunto cerrado STOCK_IN/STOCK_OUT.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeStockIn || t == TransactionTypeStockOut
}

// StockTransaction es el registro inmutable de un movimiento de stock.
// Quantity siempre es positiva; el signo lo determina Type.
type StockTransaction struct {
	ID        string
	ProductID string
	UserID    string
	Quantity  int
	Type      string // STOCK_IN, STOCK_OUT
	Notes     string
	CreatedAt time.Time

	// Product y User se llenan en lecturas con join.
	Product *Product
	User    *User
}

// SignedQuantity devuelve la cantidad con signo según el tipo:
// positiva para STOCK_IN, negativa para STOCK_OUT.
func (t *StockTransaction) SignedQuantity() int {
	if t.Type == TransactionTypeStockOut {
		return -t.Quantity
	}
	return t.Quantity
}

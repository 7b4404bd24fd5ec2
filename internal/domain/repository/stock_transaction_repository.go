package repository

import "github.com/jdcastano/stock-control-api/internal/domain/entity"

// StockTransactionRepository define el puerto de persistencia para StockTransaction (DIP).
// List devuelve las transacciones más recientes primero, con producto y usuario.
type StockTransactionRepository interface {
	Create(transaction *entity.StockTransaction) error
	GetByID(id string) (*entity.StockTransaction, error)
	List(limit, offset int) ([]*entity.StockTransaction, error)
	Delete(id string) error
}

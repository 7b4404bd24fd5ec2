package repository

import "github.com/jdcastano/stock-control-api/internal/domain/entity"

// SupplierOrderRepository define el puerto de persistencia para SupplierOrder (DIP).
// Create persiste la orden con sus líneas en una sola transacción.
type SupplierOrderRepository interface {
	Create(order *entity.SupplierOrder) error
	GetByID(id string) (*entity.SupplierOrder, error)
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.SupplierOrder, error)
}

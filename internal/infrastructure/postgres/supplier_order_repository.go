package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jdcastano/stock-control-api/internal/domain"
	"github.com/jdcastano/stock-control-api/internal/domain/entity"
	"github.com/jdcastano/stock-control-api/internal/domain/repository"
)

var _ repository.SupplierOrderRepository = (*SupplierOrderRepo)(nil)

// SupplierOrderRepo implementación del puerto SupplierOrderRepository (usable con pool o tx).
type SupplierOrderRepo struct {
	q Querier
}

// NewSupplierOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierOrderRepository(q Querier) *SupplierOrderRepo {
	return &SupplierOrderRepo{q: q}
}

// Create persiste la cabecera de la orden y sus líneas. Para que cabecera y
// líneas queden en una sola transacción, construir el repo sobre una tx
// (TxRunner.RunOrder).
func (r *SupplierOrderRepo) Create(order *entity.SupplierOrder) error {
	query := `
		INSERT INTO supplier_orders (id, supplier_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SupplierID, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // proveedor inexistente
		}
		return fmt.Errorf("insert supplier order: %w", err)
	}
	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.OrderID = order.ID
		itemQuery := `
			INSERT INTO supplier_order_items (id, order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price,
		); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound // producto inexistente
			}
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con proveedor y líneas (producto anidado por línea).
func (r *SupplierOrderRepo) GetByID(id string) (*entity.SupplierOrder, error) {
	query := `
		SELECT o.id, o.supplier_id, o.status, o.created_at, o.updated_at,
			s.id, s.name, s.email, s.phone, s.address, s.created_at, s.updated_at
		FROM supplier_orders o
		JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.id = $1`
	var o entity.SupplierOrder
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.SupplierID, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier order: %w", err)
	}
	o.Supplier = &s
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// UpdateStatus muta el estado de la orden.
func (r *SupplierOrderRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE supplier_orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista órdenes paginadas, más recientes primero, con proveedor y líneas.
func (r *SupplierOrderRepo) List(limit, offset int) ([]*entity.SupplierOrder, error) {
	query := `
		SELECT o.id, o.supplier_id, o.status, o.created_at, o.updated_at,
			s.id, s.name, s.email, s.phone, s.address, s.created_at, s.updated_at
		FROM supplier_orders o
		JOIN suppliers s ON s.id = o.supplier_id
		ORDER BY o.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list supplier orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierOrder
	for rows.Next() {
		var o entity.SupplierOrder
		var s entity.Supplier
		if err := rows.Scan(
			&o.ID, &o.SupplierID, &o.Status, &o.CreatedAt, &o.UpdatedAt,
			&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier order: %w", err)
		}
		o.Supplier = &s
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.listItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

func (r *SupplierOrderRepo) listItems(orderID string) ([]entity.SupplierOrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.price,
			p.id, p.name, p.description, p.category_id, p.current_stock, p.reorder_point, p.price, p.sku, p.created_at, p.updated_at
		FROM supplier_order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.SupplierOrderItem
	for rows.Next() {
		var it entity.SupplierOrderItem
		var p entity.Product
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price,
			&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.CurrentStock,
			&p.ReorderPoint, &p.Price, &p.SKU, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		it.Product = &p
		items = append(items, it)
	}
	return items, rows.Err()
}

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

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del puerto StockTransactionRepository (usable con pool o tx).
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create persiste una transacción de stock.
func (r *StockTransactionRepo) Create(transaction *entity.StockTransaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_transactions (id, product_id, user_id, quantity, type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	notes := (*string)(nil)
	if transaction.Notes != "" {
		notes = &transaction.Notes
	}
	_, err := r.q.Exec(context.Background(), query,
		transaction.ID, transaction.ProductID, transaction.UserID,
		transaction.Quantity, transaction.Type, notes, transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock transaction: %w", err)
	}
	return nil
}

const transactionJoinedQuery = `
	SELECT t.id, t.product_id, t.user_id, t.quantity, t.type, t.notes, t.created_at,
		p.id, p.name, p.description, p.category_id, p.current_stock, p.reorder_point, p.price, p.sku, p.created_at, p.updated_at,
		u.id, u.email, u.name, u.role
	FROM stock_transactions t
	JOIN products p ON p.id = t.product_id
	JOIN users u ON u.id = t.user_id`

// GetByID obtiene una transacción con producto y usuario anidados.
func (r *StockTransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	t, err := scanTransaction(r.q.QueryRow(context.Background(), transactionJoinedQuery+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return t, nil
}

// List lista transacciones con producto y usuario, más recientes primero.
func (r *StockTransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	query := transactionJoinedQuery + ` ORDER BY t.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Delete elimina una transacción por ID.
func (r *StockTransactionRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stock_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTransaction(row rowScanner) (*entity.StockTransaction, error) {
	var t entity.StockTransaction
	var p entity.Product
	var u entity.User
	var notes *string
	if err := row.Scan(
		&t.ID, &t.ProductID, &t.UserID, &t.Quantity, &t.Type, &notes, &t.CreatedAt,
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.CurrentStock,
		&p.ReorderPoint, &p.Price, &p.SKU, &p.CreatedAt, &p.UpdatedAt,
		&u.ID, &u.Email, &u.Name, &u.Role,
	); err != nil {
		return nil, err
	}
	if notes != nil {
		t.Notes = *notes
	}
	t.Product = &p
	t.User = &u
	return &t, nil
}

package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jdcastano/stock-control-api/internal/application/auth"
	"github.com/jdcastano/stock-control-api/internal/application/dto"
	"github.com/jdcastano/stock-control-api/internal/application/usecase"
	"github.com/jdcastano/stock-control-api/internal/domain"
	"github.com/jdcastano/stock-control-api/internal/domain/entity"
	"github.com/jdcastano/stock-control-api/internal/domain/repository"
)

// StockLedgerUseCase registra, lista y elimina transacciones de stock de forma
// transaccional, con bloqueo de fila sobre el producto (SELECT FOR UPDATE).
// Invariante: current_stock del producto = stock inicial + Σ cantidades con
// signo de sus transacciones. Registrar y eliminar preservan el invariante.
type StockLedgerUseCase struct {
	txRunner TxRunner
	txnRepo  repository.StockTransactionRepository
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner, txnRepo repository.StockTransactionRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner, txnRepo: txnRepo}
}

// TransactionInput entrada para registrar un movimiento de stock.
// UserID proviene del token validado, nunca del cuerpo de la petición.
type TransactionInput struct {
	UserID    string
	ProductID string
	Quantity  int
	Type      string
	Notes     string
}

// Register valida la entrada y, en una sola transacción: bloquea la fila del
// producto, verifica que una salida no deje stock negativo, escribe el nuevo
// contador e inserta el registro. Commit o Rollback para ambas escrituras.
func (uc *StockLedgerUseCase) Register(ctx context.Context, input TransactionInput) (*dto.StockTransactionResponse, error) {
	if input.ProductID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidTransactionType(input.Type) {
		return nil, domain.ErrInvalidInput
	}

	txn := &entity.StockTransaction{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Quantity:  input.Quantity,
		Type:      input.Type,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txnRepo repository.StockTransactionRepository,
	) error {
		// Bloquea la fila del producto; serializa ajustes concurrentes del mismo producto.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newStock := product.CurrentStock + txn.SignedQuantity()
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		return txnRepo.Create(txn)
	})
	if err != nil {
		return nil, err
	}

	// Relee con joins de producto y usuario para la respuesta.
	created, err := uc.txnRepo.GetByID(txn.ID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(created), nil
}

// List lista transacciones, más recientes primero, con producto y usuario.
func (uc *StockLedgerUseCase) List(limit, offset int) ([]dto.StockTransactionResponse, error) {
	list, err := uc.txnRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockTransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return items, nil
}

// Delete elimina una transacción revirtiendo su efecto sobre el stock, en la
// misma transacción de BD. Una reversión que dejaría stock negativo (eliminar
// un STOCK_IN ya consumido) se rechaza para preservar el invariante.
func (uc *StockLedgerUseCase) Delete(ctx context.Context, id string) (*dto.StockTransactionResponse, error) {
	var deleted *entity.StockTransaction
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txnRepo repository.StockTransactionRepository,
	) error {
		txn, err := txnRepo.GetByID(id)
		if err != nil {
			return err
		}
		if txn == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(txn.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newStock := product.CurrentStock - txn.SignedQuantity()
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		if err := txnRepo.Delete(id); err != nil {
			return err
		}
		deleted = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(deleted), nil
}

func toTransactionResponse(t *entity.StockTransaction) *dto.StockTransactionResponse {
	if t == nil {
		return nil
	}
	resp := &dto.StockTransactionResponse{
		ID:        t.ID,
		ProductID: t.ProductID,
		UserID:    t.UserID,
		Quantity:  t.Quantity,
		Type:      t.Type,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
	}
	if t.Product != nil {
		resp.Product = usecase.ToProductResponse(t.Product)
	}
	if t.User != nil {
		resp.User = auth.ToUserResponse(t.User)
	}
	return resp
}

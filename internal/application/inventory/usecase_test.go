package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdcastano/stock-control-api/internal/application/inventory"
	"github.com/jdcastano/stock-control-api/internal/domain"
	"github.com/jdcastano/stock-control-api/internal/domain/entity"
	"github.com/jdcastano/stock-control-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore guarda productos y transacciones compartidos por los fakes.
// El mutex de memTxRunner serializa los callbacks igual que el bloqueo de
// fila lo hace en PostgreSQL.
type memStore struct {
	products map[string]*entity.Product
	txns     map[string]*entity.StockTransaction
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		txns:     make(map[string]*entity.StockTransaction),
	}
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) UpdateStock(id string, currentStock int) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = currentStock
	return nil
}

type memTxnRepo struct {
	store *memStore
	mu    sync.Mutex
}

func (r *memTxnRepo) Create(t *entity.StockTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.store.txns[t.ID] = &cp
	return nil
}

func (r *memTxnRepo) GetByID(id string) (*entity.StockTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.store.txns[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTxnRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.StockTransaction, 0, len(r.store.txns))
	for _, t := range r.store.txns {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memTxnRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store.txns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.txns, id)
	return nil
}

// memTxRunner serializa los callbacks con un mutex, emulando la transacción
// con bloqueo de fila. No hay rollback: los fakes solo escriben al final del
// callback cuando toda la validación ya pasó, igual que el caso de uso.
type memTxRunner struct {
	mu          sync.Mutex
	productRepo repository.ProductRepository
	txnRepo     repository.StockTransactionRepository
}

func (tr *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txnRepo repository.StockTransactionRepository,
) error) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return fn(tr.productRepo, tr.txnRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID = "11111111-1111-1111-1111-111111111111"
	testUserID    = "22222222-2222-2222-2222-222222222222"
)

func buildLedger(t *testing.T, initialStock int) (*inventory.StockLedgerUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	store.products[testProductID] = &entity.Product{
		ID:           testProductID,
		Name:         "Cisco ISR 1101",
		SKU:          "XYZ123",
		CurrentStock: initialStock,
	}
	txnRepo := &memTxnRepo{store: store}
	runner := &memTxRunner{
		productRepo: &memProductRepo{store: store},
		txnRepo:     txnRepo,
	}
	return inventory.NewStockLedgerUseCase(runner, txnRepo), store
}

func register(t *testing.T, uc *inventory.StockLedgerUseCase, qty int, typ string) string {
	t.Helper()
	resp, err := uc.Register(context.Background(), inventory.TransactionInput{
		UserID:    testUserID,
		ProductID: testProductID,
		Quantity:  qty,
		Type:      typ,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El stock del producto debe ser el inicial más la suma con signo de sus
// transacciones, para cualquier secuencia de entradas y salidas.
func TestRegister_InvarianteSobreSecuencia(t *testing.T) {
	uc, store := buildLedger(t, 100)

	moves := []struct {
		qty int
		typ string
	}{
		{30, entity.TransactionTypeStockIn},
		{50, entity.TransactionTypeStockOut},
		{5, entity.TransactionTypeStockIn},
		{80, entity.TransactionTypeStockOut},
		{10, entity.TransactionTypeStockIn},
	}

	expected := 100
	for _, m := range moves {
		register(t, uc, m.qty, m.typ)
		if m.typ == entity.TransactionTypeStockIn {
			expected += m.qty
		} else {
			expected -= m.qty
		}
		assert.Equal(t, expected, store.products[testProductID].CurrentStock)
	}
	// 100 +30 -50 +5 -80 +10 = 15
	assert.Equal(t, 15, store.products[testProductID].CurrentStock)
}

// Una salida mayor al stock disponible se rechaza y no deja rastro.
func TestRegister_SalidaInsuficiente_NoAlteraNada(t *testing.T) {
	uc, store := buildLedger(t, 10)

	_, err := uc.Register(context.Background(), inventory.TransactionInput{
		UserID:    testUserID,
		ProductID: testProductID,
		Quantity:  11,
		Type:      entity.TransactionTypeStockOut,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, store.products[testProductID].CurrentStock,
		"un STOCK_OUT rechazado no debe alterar el stock")
	assert.Empty(t, store.txns, "no debe persistirse ninguna transacción")
}

// Salida exacta al stock disponible: queda en cero, no se rechaza.
func TestRegister_SalidaExacta_DejaCero(t *testing.T) {
	uc, store := buildLedger(t, 10)
	register(t, uc, 10, entity.TransactionTypeStockOut)
	assert.Equal(t, 0, store.products[testProductID].CurrentStock)
}

func TestRegister_ValidaEntrada(t *testing.T) {
	uc, _ := buildLedger(t, 10)
	ctx := context.Background()

	_, err := uc.Register(ctx, inventory.TransactionInput{
		UserID: testUserID, ProductID: testProductID, Quantity: 0, Type: entity.TransactionTypeStockIn,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Register(ctx, inventory.TransactionInput{
		UserID: testUserID, ProductID: testProductID, Quantity: -5, Type: entity.TransactionTypeStockIn,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = uc.Register(ctx, inventory.TransactionInput{
		UserID: testUserID, ProductID: testProductID, Quantity: 1, Type: "ADJUSTMENT",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fuera del conjunto cerrado")
}

func TestRegister_ProductoInexistente_Retorna404(t *testing.T) {
	uc, _ := buildLedger(t, 10)
	_, err := uc.Register(context.Background(), inventory.TransactionInput{
		UserID:    testUserID,
		ProductID: "99999999-9999-9999-9999-999999999999",
		Quantity:  1,
		Type:      entity.TransactionTypeStockIn,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Eliminar una transacción revierte su efecto sobre el stock.
func TestDelete_RevierteElEfecto(t *testing.T) {
	uc, store := buildLedger(t, 100)

	inID := register(t, uc, 25, entity.TransactionTypeStockIn)
	assert.Equal(t, 125, store.products[testProductID].CurrentStock)

	deleted, err := uc.Delete(context.Background(), inID)
	require.NoError(t, err)
	assert.Equal(t, inID, deleted.ID)
	assert.Equal(t, 100, store.products[testProductID].CurrentStock,
		"eliminar un STOCK_IN debe restar su cantidad")

	outID := register(t, uc, 40, entity.TransactionTypeStockOut)
	assert.Equal(t, 60, store.products[testProductID].CurrentStock)

	_, err = uc.Delete(context.Background(), outID)
	require.NoError(t, err)
	assert.Equal(t, 100, store.products[testProductID].CurrentStock,
		"eliminar un STOCK_OUT debe devolver su cantidad")
}

// Revertir un STOCK_IN ya consumido dejaría stock negativo: se rechaza.
func TestDelete_ReversionInsuficiente_SeRechaza(t *testing.T) {
	uc, store := buildLedger(t, 0)

	inID := register(t, uc, 10, entity.TransactionTypeStockIn)
	register(t, uc, 8, entity.TransactionTypeStockOut)
	assert.Equal(t, 2, store.products[testProductID].CurrentStock)

	_, err := uc.Delete(context.Background(), inID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, store.products[testProductID].CurrentStock,
		"una reversión rechazada no debe alterar el stock")
	assert.Len(t, store.txns, 2, "la transacción no debe eliminarse")
}

func TestDelete_TransaccionInexistente_Retorna404(t *testing.T) {
	uc, _ := buildLedger(t, 10)
	_, err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// N entradas concurrentes de cantidad 1 partiendo de 0 deben terminar en N
// exacto: la serialización dentro de la transacción evita lecturas perdidas.
func TestRegister_ConcurrenciaSerializada(t *testing.T) {
	const n = 50
	uc, store := buildLedger(t, 0)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Register(context.Background(), inventory.TransactionInput{
				UserID:    testUserID,
				ProductID: testProductID,
				Quantity:  1,
				Type:      entity.TransactionTypeStockIn,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, store.products[testProductID].CurrentStock)
	assert.Len(t, store.txns, n)
}

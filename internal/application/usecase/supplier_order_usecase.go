package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jdcastano/stock-control-api/internal/application/dto"
	"github.com/jdcastano/stock-control-api/internal/domain"
	"github.com/jdcastano/stock-control-api/internal/domain/entity"
	"github.com/jdcastano/stock-control-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción de BD con el
// repositorio de órdenes atado a esa tx. Garantiza cabecera + líneas atómicas.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.SupplierOrderRepository) error) error
}

// OrderPDFGenerator genera el documento PDF de una orden de compra.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.SupplierOrder) ([]byte, error)
}

// SupplierOrderUseCase casos de uso para órdenes de compra a proveedores.
type SupplierOrderUseCase struct {
	txRunner     OrderTxRunner
	orderRepo    repository.SupplierOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	pdfGenerator OrderPDFGenerator
}

// NewSupplierOrderUseCase construye el caso de uso.
func NewSupplierOrderUseCase(
	txRunner OrderTxRunner,
	orderRepo repository.SupplierOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	pdfGenerator OrderPDFGenerator,
) *SupplierOrderUseCase {
	return &SupplierOrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		pdfGenerator: pdfGenerator,
	}
}

// Create crea una orden PENDING con sus líneas en una sola transacción.
func (uc *SupplierOrderUseCase) Create(ctx context.Context, in dto.CreateSupplierOrderRequest) (*dto.SupplierOrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	order := &entity.SupplierOrder{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		Status:     entity.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		order.Items = append(order.Items, entity.SupplierOrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Product:   product,
		})
	}
	err = uc.txRunner.RunOrder(ctx, func(orderRepo repository.SupplierOrderRepository) error {
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	order.Supplier = supplier
	return toOrderResponse(order), nil
}

// UpdateStatus muta el estado de la orden (PENDING, RECEIVED, CANCELLED).
func (uc *SupplierOrderUseCase) UpdateStatus(id string, in dto.UpdateSupplierOrderRequest) (*dto.SupplierOrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.orderRepo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List lista órdenes paginadas con proveedor y líneas.
func (uc *SupplierOrderUseCase) List(limit, offset int) ([]dto.SupplierOrderResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// GeneratePDF genera el documento PDF de una orden.
func (uc *SupplierOrderUseCase) GeneratePDF(ctx context.Context, id string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGenerator.GenerateOrderPDF(ctx, order)
}

func toOrderResponse(o *entity.SupplierOrder) *dto.SupplierOrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.SupplierOrderResponse{
		ID:         o.ID,
		SupplierID: o.SupplierID,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		Items:      make([]dto.OrderItemResponse, 0, len(o.Items)),
	}
	if o.Supplier != nil {
		resp.Supplier = toSupplierResponse(o.Supplier)
	}
	for _, item := range o.Items {
		ir := dto.OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			ir.ProductName = item.Product.Name
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp
}

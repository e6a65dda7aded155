package inventory

import (
	"context"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Usecase orquesta entradas, salidas y ajustes de inventario.
// Toda escritura corre en transacción: el stock y su movimiento se
// confirman juntos o no se confirma ninguno.
type Usecase struct {
	invRepo     repository.InventoryRepository
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	tx          TxRunner
}

// NewUsecase construye el caso de uso con repos atados al pool y el runner de tx.
func NewUsecase(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	tx TxRunner,
) *Usecase {
	return &Usecase{invRepo: invRepo, movRepo: movRepo, productRepo: productRepo, tx: tx}
}

// List devuelve el inventario completo, lo más escaso primero.
func (u *Usecase) List() ([]*entity.InventoryDetail, error) {
	return u.invRepo.ListAll()
}

// GetByProduct devuelve la fila de inventario de un producto.
func (u *Usecase) GetByProduct(productID int64) (*entity.InventoryDetail, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	d, err := u.invRepo.GetDetail(productID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// ListMovements devuelve el historial de un producto, más reciente primero.
func (u *Usecase) ListMovements(productID int64) ([]*entity.Movement, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := u.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return u.movRepo.ListByProduct(productID)
}

// RegisterEntry suma stock y registra el movimiento de entrada.
func (u *Usecase) RegisterEntry(ctx context.Context, productID, quantity int64) (*entity.Movement, error) {
	if productID <= 0 || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := u.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	mov := &entity.Movement{ProductID: productID, Type: entity.MovementEntrada, Quantity: quantity}
	err = u.tx.Run(ctx, func(movRepo repository.MovementRepository, invRepo repository.InventoryRepository, _ repository.ProductRepository) error {
		if err := invRepo.AddQuantity(productID, quantity); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterExit descuenta stock y registra el movimiento de salida.
// La fila se bloquea y el descuento es condicional: dos salidas
// concurrentes nunca dejan el stock en negativo.
func (u *Usecase) RegisterExit(ctx context.Context, productID, quantity int64, referencia string) (*entity.Movement, error) {
	if productID <= 0 || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := u.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	mov := &entity.Movement{ProductID: productID, Type: entity.MovementSalida, Quantity: quantity, Referencia: referencia}
	err = u.tx.Run(ctx, func(movRepo repository.MovementRepository, invRepo repository.InventoryRepository, _ repository.ProductRepository) error {
		inv, err := invRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if inv == nil || inv.Quantity < quantity {
			var disponibles int64
			if inv != nil {
				disponibles = inv.Quantity
			}
			return &domain.InsufficientStockError{Disponibles: disponibles}
		}
		ok, err := invRepo.DiscountIfEnough(productID, quantity)
		if err != nil {
			return err
		}
		if !ok {
			return &domain.InsufficientStockError{Disponibles: inv.Quantity}
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// Adjust fija el stock de un producto en una cantidad absoluta y registra
// la diferencia como movimiento. Sin diferencia no hay movimiento.
// Requiere que la fila de inventario exista (se crea con el producto).
func (u *Usecase) Adjust(ctx context.Context, productID, newQuantity int64) (*entity.InventoryDetail, error) {
	if productID <= 0 || newQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := u.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	err = u.tx.Run(ctx, func(movRepo repository.MovementRepository, invRepo repository.InventoryRepository, _ repository.ProductRepository) error {
		inv, err := invRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if _, err := invRepo.SetQuantity(productID, newQuantity); err != nil {
			return err
		}

		delta := newQuantity - inv.Quantity
		switch {
		case delta > 0:
			return movRepo.Create(&entity.Movement{
				ProductID: productID,
				Type:      entity.MovementEntrada,
				Quantity:  delta,
			})
		case delta < 0:
			return movRepo.Create(&entity.Movement{
				ProductID:  productID,
				Type:       entity.MovementSalida,
				Quantity:   -delta,
				Referencia: entity.ReferenciaAjusteManual,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.invRepo.GetDetail(productID)
}

package cart

import (
	"context"

	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
type TxRunner interface {
	RunCart(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Usecase orquesta el carrito por cliente. Agregar no descuenta stock
// (el descuento ocurre en la salida de inventario), pero sí valida bajo
// bloqueo de fila que la cantidad acumulada quepa en el stock actual.
type Usecase struct {
	cartRepo repository.CartRepository
	tx       TxRunner
}

func NewUsecase(cartRepo repository.CartRepository, tx TxRunner) *Usecase {
	return &Usecase{cartRepo: cartRepo, tx: tx}
}

// List devuelve el carrito del cliente, lo agregado más recientemente primero.
func (u *Usecase) List(customerID int64) ([]*entity.CartItemView, error) {
	return u.cartRepo.ListByCustomer(customerID)
}

// Add agrega cantidad de un producto al carrito. Si ya hay una línea activa
// del producto, acumula sobre ella; la validación de stock usa la suma.
func (u *Usecase) Add(ctx context.Context, customerID, productID, quantity int64) error {
	if productID <= 0 || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return u.tx.RunCart(ctx, func(cartRepo repository.CartRepository, invRepo repository.InventoryRepository, productRepo repository.ProductRepository) error {
		p, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if !p.Activo {
			return domain.ErrInactiveProduct
		}

		stock, err := lockedStock(invRepo, productID)
		if err != nil {
			return err
		}
		existing, err := cartRepo.GetActiveItem(customerID, productID)
		if err != nil {
			return err
		}
		total := quantity
		if existing != nil {
			total += existing.Quantity
		}
		if total > stock {
			return &domain.InsufficientStockError{Disponibles: stock}
		}

		if existing != nil {
			return cartRepo.UpdateQuantity(existing.ID, total)
		}
		return cartRepo.Insert(&entity.CartItem{
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   quantity,
		})
	})
}

// UpdateQuantity reemplaza la cantidad de una línea del cliente.
func (u *Usecase) UpdateQuantity(ctx context.Context, customerID, itemID, quantity int64) error {
	if itemID <= 0 || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return u.tx.RunCart(ctx, func(cartRepo repository.CartRepository, invRepo repository.InventoryRepository, productRepo repository.ProductRepository) error {
		item, err := cartRepo.GetOwnedActive(itemID, customerID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		p, err := productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if p == nil || !p.Activo {
			return domain.ErrInactiveProduct
		}

		stock, err := lockedStock(invRepo, item.ProductID)
		if err != nil {
			return err
		}
		if quantity > stock {
			return &domain.InsufficientStockError{Disponibles: stock}
		}
		return cartRepo.UpdateQuantity(item.ID, quantity)
	})
}

// Remove quita una línea del carrito del cliente (borrado lógico).
func (u *Usecase) Remove(customerID, itemID int64) error {
	if itemID <= 0 {
		return domain.ErrInvalidInput
	}
	ok, err := u.cartRepo.Deactivate(itemID, customerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Clear vacía el carrito del cliente. Vaciar un carrito vacío no es error.
func (u *Usecase) Clear(customerID int64) (int64, error) {
	return u.cartRepo.DeactivateAll(customerID)
}

// lockedStock bloquea la fila de inventario del producto y devuelve su
// cantidad, o cero si el producto aún no tiene fila.
func lockedStock(invRepo repository.InventoryRepository, productID int64) (int64, error) {
	inv, err := invRepo.GetForUpdate(productID)
	if err != nil {
		return 0, err
	}
	if inv == nil {
		return 0, nil
	}
	return inv.Quantity, nil
}

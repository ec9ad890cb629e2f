// Package cart управляет корзиной пользователя в кеше и повтором прошлых заказов.
package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// Service управляет корзиной.
type Service struct {
	carts    domain.CartStore
	catalog  domain.CatalogRepository
	orders   domain.OrderRepository
	timeline domain.TimelineRepository
	logger   *log.Entry
}

// NewService создаёт сервис корзины. timeline может быть nil.
func NewService(
	carts domain.CartStore,
	catalog domain.CatalogRepository,
	orders domain.OrderRepository,
	timeline domain.TimelineRepository,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "cart")
	}
	return &Service{
		carts:    carts,
		catalog:  catalog,
		orders:   orders,
		timeline: timeline,
		logger:   logger,
	}
}

// Get возвращает корзину пользователя (пустую, если её нет).
func (s *Service) Get(ctx context.Context, userID string) (domain.Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Cart{}, domain.ErrUserRequired
	}
	return s.carts.Get(ctx, userID)
}

// AddItem добавляет продукт по текущей цене каталога. Повторное добавление
// того же продукта увеличивает количество и сохраняет первоначальную цену.
func (s *Service) AddItem(ctx context.Context, userID, productName string, qty int32) (domain.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return domain.Cart{}, err
	}
	if qty <= 0 {
		return domain.Cart{}, domain.ErrQtyInvalid
	}

	product, err := s.catalog.GetProduct(ctx, productName)
	if err != nil {
		return domain.Cart{}, err
	}
	if err := cart.Add(domain.CartItem{
		ProductName: product.Name,
		Qty:         qty,
		PriceMinor:  product.PriceMinor,
	}); err != nil {
		return domain.Cart{}, err
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: save cart: %w", domain.ErrPersistence, err)
	}
	return cart, nil
}

// SetQuantity меняет количество строки; значения меньше 1 приводятся к 1.
func (s *Service) SetQuantity(ctx context.Context, userID string, index int, qty int32) (domain.Cart, error) {
	return s.update(ctx, userID, func(cart *domain.Cart) error {
		return cart.SetQty(index, qty)
	})
}

// RemoveItem удаляет строку корзины по индексу.
func (s *Service) RemoveItem(ctx context.Context, userID string, index int) (domain.Cart, error) {
	return s.update(ctx, userID, func(cart *domain.Cart) error {
		return cart.Remove(index)
	})
}

func (s *Service) update(ctx context.Context, userID string, mutate func(*domain.Cart) error) (domain.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return domain.Cart{}, err
	}
	if err := mutate(&cart); err != nil {
		return domain.Cart{}, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: save cart: %w", domain.ErrPersistence, err)
	}
	return cart, nil
}

// RepeatOrder строит корзину из прошлого заказа: те же продукты, количества
// и цены из снимка заказа. Склад не читается и не меняется.
func (s *Service) RepeatOrder(ctx context.Context, orderID string) (domain.Cart, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Cart{}, err
	}
	return order.RepeatCart(), nil
}

// RestoreFromOrder заменяет корзину пользователя строками его прошлого заказа.
// Чужой заказ неотличим от отсутствующего.
func (s *Service) RestoreFromOrder(ctx context.Context, userID, orderID string) (domain.Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Cart{}, domain.ErrUserRequired
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Cart{}, err
	}
	if order.UserID != userID {
		return domain.Cart{}, domain.ErrOrderNotFound
	}

	cart := order.RepeatCart()
	if err := s.carts.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: save cart: %w", domain.ErrPersistence, err)
	}

	if s.timeline != nil {
		err := s.timeline.Append(ctx, domain.TimelineEvent{
			OrderID:  order.ID,
			Type:     domain.TimelineCartRepeated,
			Occurred: time.Now().UTC(),
		})
		if err != nil {
			s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to append timeline event")
		}
	}
	return cart, nil
}

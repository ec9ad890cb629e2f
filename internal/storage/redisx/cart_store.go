package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/money"
)

// DefaultCartTTL — сколько живёт брошенная корзина.
const DefaultCartTTL = 7 * 24 * time.Hour

// CartKey возвращает ключ корзины пользователя.
func CartKey(userID string) string {
	return "cart:" + userID
}

// cartLine хранит строку корзины в кеше. Цена хранится десятичной строкой.
type cartLine struct {
	Name     string          `json:"name"`
	Quantity int32           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type cartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore создаёт CartStore поверх Redis. ttl <= 0 заменяется на DefaultCartTTL.
func NewCartStore(client *redis.Client, ttl time.Duration) *cartStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &cartStore{client: client, ttl: ttl}
}

func (s *cartStore) Get(ctx context.Context, userID string) (domain.Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Cart{}, domain.ErrUserRequired
	}

	raw, err := s.client.Get(ctx, CartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Cart{UserID: userID}, nil
		}
		return domain.Cart{}, fmt.Errorf("%w: get cart: %v", domain.ErrPersistence, err)
	}
	return decodeCart(userID, raw)
}

func (s *cartStore) Save(ctx context.Context, cart domain.Cart) error {
	if strings.TrimSpace(cart.UserID) == "" {
		return domain.ErrUserRequired
	}
	if len(cart.Items) == 0 {
		return s.Delete(ctx, cart.UserID)
	}

	raw, err := encodeCart(cart)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, CartKey(cart.UserID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: save cart: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (s *cartStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, CartKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: delete cart: %v", domain.ErrPersistence, err)
	}
	return nil
}

func encodeCart(cart domain.Cart) ([]byte, error) {
	lines := make([]cartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, cartLine{
			Name:     item.ProductName,
			Quantity: item.Qty,
			Price:    money.FromMinor(item.PriceMinor),
		})
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("marshal cart: %w", err)
	}
	return raw, nil
}

func decodeCart(userID string, raw []byte) (domain.Cart, error) {
	var lines []cartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: decode cart %s: %v", domain.ErrPersistence, userID, err)
	}

	cart := domain.Cart{UserID: userID, Items: make([]domain.CartItem, 0, len(lines))}
	for _, line := range lines {
		price, err := money.ToMinor(line.Price)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("%w: cart %s line %s: %v", domain.ErrPersistence, userID, line.Name, err)
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ProductName: line.Name,
			Qty:         line.Quantity,
			PriceMinor:  price,
		})
	}
	return cart, nil
}

var _ domain.CartStore = (*cartStore)(nil)

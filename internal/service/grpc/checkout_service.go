package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/money"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/cart"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/checkout"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/invoice"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/payment"
	checkoutv1 "github.com/vladislavdragonenkov/lotcheckout/proto/checkout/v1"
)

const (
	userIDHeader = "x-user-id"

	defaultListOrdersLimit   = 100
	defaultListProductsLimit = 100
)

// Dependencies — сервисы и репозитории, поверх которых работает gRPC API.
type Dependencies struct {
	Catalog     domain.CatalogRepository
	Carts       *cart.Service
	Checkout    *checkout.Service
	Payments    *payment.Service
	Orders      domain.OrderRepository
	Timeline    domain.TimelineRepository
	Idempotency domain.IdempotencyRepository
}

// CheckoutService реализует gRPC API каталога, корзины, оформления и оплаты.
type CheckoutService struct {
	checkoutv1.UnimplementedCheckoutServiceServer

	catalog  domain.CatalogRepository
	carts    *cart.Service
	checkout *checkout.Service
	payments *payment.Service
	orders   domain.OrderRepository
	timeline domain.TimelineRepository
	idemRepo domain.IdempotencyRepository
	logger   *log.Entry
}

// NewCheckoutService конструирует сервис с зависимостями.
func NewCheckoutService(deps Dependencies, logger *log.Entry) *CheckoutService {
	if logger == nil {
		logger = log.New().WithField("component", "checkout-grpc")
	}
	return &CheckoutService{
		catalog:  deps.Catalog,
		carts:    deps.Carts,
		checkout: deps.Checkout,
		payments: deps.Payments,
		orders:   deps.Orders,
		timeline: deps.Timeline,
		idemRepo: deps.Idempotency,
		logger:   logger,
	}
}

// ListProducts возвращает каталог с суммарными остатками.
func (s *CheckoutService) ListProducts(ctx context.Context, req *checkoutv1.ListProductsRequest) (*checkoutv1.ListProductsResponse, error) {
	if req == nil {
		req = &checkoutv1.ListProductsRequest{}
	}
	if req.Offset < 0 || req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "offset and limit must be >= 0")
	}
	limit := int(req.Limit)
	if limit == 0 {
		limit = defaultListProductsLimit
	}

	products, err := s.catalog.ListProducts(ctx, int(req.Offset), limit)
	if err != nil {
		return nil, s.toStatus(err, "ListProducts")
	}

	result := make([]*checkoutv1.Product, 0, len(products))
	for _, p := range products {
		result = append(result, &checkoutv1.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       toProtoMoney(p.PriceMinor),
			Available:   p.Available,
		})
	}
	return &checkoutv1.ListProductsResponse{Products: result}, nil
}

// PlanAllocation показывает, с каких лотов будет списан товар. Склад не меняется.
// Нехватка остатка возвращается полем Shortfall, а не ошибкой.
func (s *CheckoutService) PlanAllocation(ctx context.Context, req *checkoutv1.PlanAllocationRequest) (*checkoutv1.PlanAllocationResponse, error) {
	if req == nil || strings.TrimSpace(req.ProductName) == "" {
		return nil, status.Error(codes.InvalidArgument, "product_name is required")
	}

	resp := &checkoutv1.PlanAllocationResponse{ProductName: req.ProductName, Requested: req.Qty}
	plan, err := s.checkout.PlanAllocation(ctx, req.ProductName, req.Qty)
	if err != nil {
		if shortfall := domain.ShortfallFor(err, req.ProductName); shortfall > 0 {
			resp.Shortfall = shortfall
			resp.Deductions = []*checkoutv1.Deduction{}
			return resp, nil
		}
		return nil, s.toStatus(err, "PlanAllocation")
	}

	resp.Deductions = make([]*checkoutv1.Deduction, 0, len(plan.Deductions))
	for _, d := range plan.Deductions {
		resp.Deductions = append(resp.Deductions, &checkoutv1.Deduction{
			LotId:     d.LotID,
			Qty:       d.Qty,
			Remaining: d.Remaining(),
		})
	}
	return resp, nil
}

// GetCart возвращает корзину вызывающего пользователя.
func (s *CheckoutService) GetCart(ctx context.Context, _ *checkoutv1.GetCartRequest) (*checkoutv1.CartResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, s.toStatus(err, "GetCart")
	}
	return &checkoutv1.CartResponse{Cart: toProtoCart(c)}, nil
}

// AddCartItem добавляет продукт по текущей цене каталога.
func (s *CheckoutService) AddCartItem(ctx context.Context, req *checkoutv1.AddCartItemRequest) (*checkoutv1.CartResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || strings.TrimSpace(req.ProductName) == "" {
		return nil, status.Error(codes.InvalidArgument, "product_name is required")
	}
	c, err := s.carts.AddItem(ctx, userID, req.ProductName, req.Qty)
	if err != nil {
		return nil, s.toStatus(err, "AddCartItem")
	}
	return &checkoutv1.CartResponse{Cart: toProtoCart(c)}, nil
}

// UpdateCartItem меняет количество в строке корзины.
func (s *CheckoutService) UpdateCartItem(ctx context.Context, req *checkoutv1.UpdateCartItemRequest) (*checkoutv1.CartResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	c, err := s.carts.SetQuantity(ctx, userID, int(req.Index), req.Qty)
	if err != nil {
		return nil, s.toStatus(err, "UpdateCartItem")
	}
	return &checkoutv1.CartResponse{Cart: toProtoCart(c)}, nil
}

// RemoveCartItem удаляет строку корзины по индексу.
func (s *CheckoutService) RemoveCartItem(ctx context.Context, req *checkoutv1.RemoveCartItemRequest) (*checkoutv1.CartResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	c, err := s.carts.RemoveItem(ctx, userID, int(req.Index))
	if err != nil {
		return nil, s.toStatus(err, "RemoveCartItem")
	}
	return &checkoutv1.CartResponse{Cart: toProtoCart(c)}, nil
}

// Checkout оформляет корзину пользователя в заказ. Требует idempotency-key.
func (s *CheckoutService) Checkout(ctx context.Context, req *checkoutv1.CheckoutRequest) (*checkoutv1.CheckoutResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &checkoutv1.CheckoutRequest{}
	}

	return withIdempotency(
		s,
		ctx,
		checkoutv1.CheckoutService_Checkout_FullMethodName,
		userID,
		req,
		func() *checkoutv1.CheckoutResponse { return &checkoutv1.CheckoutResponse{} },
		func(ctx context.Context) (*checkoutv1.CheckoutResponse, error) {
			order, err := s.checkout.Checkout(ctx, userID)
			if err != nil {
				return nil, s.toStatus(err, "Checkout")
			}
			return &checkoutv1.CheckoutResponse{Order: toProtoOrder(order)}, nil
		},
	)
}

// ConfirmPayment подтверждает оплату заказа. Повторное подтверждение не ошибка:
// ответ содержит сохранённое состояние и флаг AlreadyConfirmed.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, req *checkoutv1.ConfirmPaymentRequest) (*checkoutv1.ConfirmPaymentResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || strings.TrimSpace(req.OrderId) == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	// Метод проверяется раньше любого чтения: неизвестный заказ с неверным
	// методом получает InvalidArgument, а не NotFound.
	if _, err := domain.ParsePaymentMethod(req.Method); err != nil {
		return nil, s.toStatus(err, "ConfirmPayment")
	}

	return withIdempotency(
		s,
		ctx,
		checkoutv1.CheckoutService_ConfirmPayment_FullMethodName,
		userID,
		req,
		func() *checkoutv1.ConfirmPaymentResponse { return &checkoutv1.ConfirmPaymentResponse{} },
		func(ctx context.Context) (*checkoutv1.ConfirmPaymentResponse, error) {
			if _, err := s.loadOwnOrder(ctx, userID, req.OrderId, "ConfirmPayment"); err != nil {
				return nil, err
			}
			order, err := s.payments.ConfirmPayment(ctx, req.OrderId, req.Method)
			switch {
			case err == nil:
				return &checkoutv1.ConfirmPaymentResponse{Order: toProtoOrder(order)}, nil
			case errors.Is(err, domain.ErrAlreadyConfirmed):
				return &checkoutv1.ConfirmPaymentResponse{Order: toProtoOrder(order), AlreadyConfirmed: true}, nil
			default:
				return nil, s.toStatus(err, "ConfirmPayment")
			}
		},
	)
}

// RepeatOrder заменяет корзину строками прошлого заказа с ценами из снимка.
func (s *CheckoutService) RepeatOrder(ctx context.Context, req *checkoutv1.RepeatOrderRequest) (*checkoutv1.CartResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || strings.TrimSpace(req.OrderId) == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	c, err := s.carts.RestoreFromOrder(ctx, userID, req.OrderId)
	if err != nil {
		return nil, s.toStatus(err, "RepeatOrder")
	}
	return &checkoutv1.CartResponse{Cart: toProtoCart(c)}, nil
}

// GetOrder возвращает заказ и его историю.
func (s *CheckoutService) GetOrder(ctx context.Context, req *checkoutv1.GetOrderRequest) (*checkoutv1.GetOrderResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || strings.TrimSpace(req.OrderId) == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.loadOwnOrder(ctx, userID, req.OrderId, "GetOrder")
	if err != nil {
		return nil, err
	}
	return &checkoutv1.GetOrderResponse{
		Order:    toProtoOrder(order),
		Timeline: s.buildTimeline(ctx, order.ID),
	}, nil
}

// ListOrders возвращает заказы пользователя, новые первыми.
func (s *CheckoutService) ListOrders(ctx context.Context, req *checkoutv1.ListOrdersRequest) (*checkoutv1.ListOrdersResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	limit := defaultListOrdersLimit
	if req != nil && req.PageSize > 0 {
		limit = int(req.PageSize)
	}

	orders, err := s.orders.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, s.toStatus(err, "ListOrders")
	}

	result := make([]*checkoutv1.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, toProtoOrder(order))
	}
	return &checkoutv1.ListOrdersResponse{Orders: result}, nil
}

// GetInvoice печатает счёт по оплаченному заказу.
func (s *CheckoutService) GetInvoice(ctx context.Context, req *checkoutv1.GetInvoiceRequest) (*checkoutv1.GetInvoiceResponse, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || strings.TrimSpace(req.OrderId) == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.loadOwnOrder(ctx, userID, req.OrderId, "GetInvoice")
	if err != nil {
		return nil, err
	}
	text, err := invoice.Render(order, invoice.Customer{ID: userID, Name: req.CustomerName})
	if err != nil {
		return nil, s.toStatus(err, "GetInvoice")
	}
	return &checkoutv1.GetInvoiceResponse{OrderId: order.ID, Text: text}, nil
}

// loadOwnOrder читает заказ; чужой заказ неотличим от отсутствующего.
func (s *CheckoutService) loadOwnOrder(ctx context.Context, userID, orderID, operation string) (domain.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, s.toStatus(err, operation)
	}
	if order.UserID != userID {
		s.logger.WithFields(log.Fields{
			"operation": operation,
			"order_id":  orderID,
			"user_id":   userID,
		}).Warn("order belongs to another user")
		return domain.Order{}, status.Error(codes.NotFound, domain.ErrOrderNotFound.Error())
	}
	return order, nil
}

func (s *CheckoutService) buildTimeline(ctx context.Context, orderID string) []*checkoutv1.TimelineEvent {
	if s.timeline == nil {
		return nil
	}
	events, err := s.timeline.List(ctx, orderID)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("failed to list timeline events")
		return nil
	}
	result := make([]*checkoutv1.TimelineEvent, 0, len(events))
	for _, event := range events {
		result = append(result, &checkoutv1.TimelineEvent{
			Type:     event.Type,
			Reason:   event.Reason,
			UnixTime: event.Occurred.Unix(),
		})
	}
	return result
}

// toStatus переводит доменную ошибку в gRPC-статус.
func (s *CheckoutService) toStatus(err error, operation string) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	entry := s.logger.WithError(err).WithField("operation", operation)

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return insufficientStockStatus(err)
	case errors.Is(err, domain.ErrCheckoutConflict),
		errors.Is(err, domain.ErrConcurrentModification),
		errors.Is(err, domain.ErrOrderVersionConflict):
		entry.Warn("request aborted by concurrent update")
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrOrderNotFound):
		return status.Error(codes.NotFound, domain.ErrOrderNotFound.Error())
	case errors.Is(err, domain.ErrCartEmpty):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, invoice.ErrNotPaid):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrPersistence):
		entry.Error("storage failure")
		return status.Error(codes.Unavailable, "storage is unavailable, try again")
	default:
		entry.Error("unexpected error")
		return status.Error(codes.Internal, "internal error")
	}
}

// insufficientStockStatus кладёт нехватку по каждому продукту в PreconditionFailure.
func insufficientStockStatus(err error) error {
	var shortages domain.InsufficientStockErrors
	if !errors.As(err, &shortages) {
		var single *domain.InsufficientStockError
		if errors.As(err, &single) {
			shortages = domain.InsufficientStockErrors{single}
		}
	}

	st := status.New(codes.FailedPrecondition, err.Error())
	if len(shortages) == 0 {
		return st.Err()
	}

	failure := &errdetails.PreconditionFailure{}
	for _, item := range shortages.Sorted() {
		failure.Violations = append(failure.Violations, &errdetails.PreconditionFailure_Violation{
			Type:        "STOCK",
			Subject:     item.Product,
			Description: fmt.Sprintf("requested %d, available %d, shortfall %d", item.Requested, item.Available, item.Shortfall()),
		})
	}
	detailed, detailErr := st.WithDetails(failure)
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ShortfallsFromStatus достаёт нехватку по продуктам из ошибки Checkout.
func ShortfallsFromStatus(err error) map[string]string {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	result := make(map[string]string)
	for _, detail := range st.Details() {
		failure, ok := detail.(*errdetails.PreconditionFailure)
		if !ok {
			continue
		}
		for _, v := range failure.GetViolations() {
			result[v.GetSubject()] = v.GetDescription()
		}
	}
	return result
}

func userFromContext(ctx context.Context) (string, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(userIDHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}
	return "", status.Error(codes.Unauthenticated, "x-user-id metadata is required")
}

func toProtoMoney(minor int64) *checkoutv1.Money {
	return &checkoutv1.Money{AmountMinor: minor, Amount: money.Format(minor)}
}

func toProtoCart(c domain.Cart) *checkoutv1.Cart {
	items := make([]*checkoutv1.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, &checkoutv1.CartItem{
			ProductName: item.ProductName,
			Qty:         item.Qty,
			Price:       toProtoMoney(item.PriceMinor),
			LineTotal:   toProtoMoney(int64(item.Qty) * item.PriceMinor),
		})
	}
	return &checkoutv1.Cart{UserId: c.UserID, Items: items, Total: toProtoMoney(c.TotalMinor())}
}

func toProtoOrder(order domain.Order) *checkoutv1.Order {
	items := make([]*checkoutv1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &checkoutv1.OrderItem{
			ProductName: item.ProductName,
			Qty:         item.Qty,
			Price:       toProtoMoney(item.PriceMinor),
		})
	}

	out := &checkoutv1.Order{
		Id:            order.ID,
		UserId:        order.UserID,
		Items:         items,
		Total:         toProtoMoney(order.TotalMinor),
		PaymentState:  string(order.PaymentState),
		PaymentMethod: string(order.PaymentMethod),
		PurchasedAt:   order.PurchasedAt.Unix(),
		Version:       order.Version,
	}
	if !order.BilledAt.IsZero() {
		out.BilledAt = order.BilledAt.Unix()
	}
	return out
}

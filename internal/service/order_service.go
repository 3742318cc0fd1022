package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"fooddeliver/internal/domain"
	"fooddeliver/internal/repository"
)

var (
	ErrMissingFields    = errors.New("missing required fields: name, phone, email, address, deliveryDate, and deliveryTime are required")
	ErrNotOwner         = errors.New("order not found for this user")
	ErrTooLateToCancel  = errors.New("order cannot be cancelled at this stage")
	ErrAlreadyCancelled = errors.New("order already cancelled")
)

// StageDelays задержки переходов этапов, каждая отсчитывается от момента
// создания заказа, а не от предыдущего перехода.
type StageDelays struct {
	Preparing      time.Duration
	OutForDelivery time.Duration
	Delivered      time.Duration
}

// DefaultStageDelays короткие задержки, подходящие для живого демо
func DefaultStageDelays() StageDelays {
	return StageDelays{
		Preparing:      8 * time.Second,
		OutForDelivery: 15 * time.Second,
		Delivered:      20 * time.Second,
	}
}

// Notifier уведомление о подтверждении заказа; не должен блокировать создание
type Notifier interface {
	OrderConfirmed(ctx context.Context, o *domain.Order)
}

// CreateOrderInput данные оформления заказа
type CreateOrderInput struct {
	Items               []domain.OrderItem
	Name                string
	Phone               string
	Email               string
	Address             string
	DeliveryDate        string
	DeliveryTime        string
	SpecialInstructions string
	PromoCode           string
	RestaurantID        *int64
	UserID              string
}

// OrderService владеет изменяемым состоянием заказов и их автоматическим
// продвижением по этапам. Все мутации stage/status проходят через него.
type OrderService struct {
	orders   repository.OrderRepository
	catalog  repository.CatalogRepository
	pricing  *PricingService
	tx       repository.TxManager
	clock    Clock
	delays   StageDelays
	notifier Notifier
	log      *slog.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	catalog repository.CatalogRepository,
	pricing *PricingService,
	tx repository.TxManager,
	clock Clock,
	delays StageDelays,
	notifier Notifier,
) *OrderService {
	return &OrderService{
		orders:   orders,
		catalog:  catalog,
		pricing:  pricing,
		tx:       tx,
		clock:    clock,
		delays:   delays,
		notifier: notifier,
		log:      slog.Default(),
	}
}

// PlaceOrder валидирует и оценивает корзину, создаёт заказ на этапе 1 и
// планирует три будущих перехода. Возвращает запись сразу, не дожидаясь
// переходов.
func (s *OrderService) PlaceOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if in.Name == "" || in.Phone == "" || in.Email == "" || in.Address == "" ||
		in.DeliveryDate == "" || in.DeliveryTime == "" {
		return nil, ErrMissingFields
	}

	// минимальный заказ привязан к выбранному ресторану; неизвестный id
	// не блокирует оформление
	var restaurant *domain.Restaurant
	if in.RestaurantID != nil {
		if r, err := s.catalog.GetRestaurant(ctx, *in.RestaurantID); err == nil {
			restaurant = r
		}
	}

	quote, err := s.pricing.PriceOrder(ctx, in.Items, in.PromoCode, restaurant)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	o := domain.Order{
		RestaurantID:        in.RestaurantID,
		UserID:              in.UserID,
		Items:               in.Items,
		Subtotal:            quote.Subtotal,
		Discount:            quote.Discount,
		Total:               quote.Total,
		Name:                in.Name,
		Phone:               in.Phone,
		Email:               in.Email,
		Address:             in.Address,
		DeliveryDate:        in.DeliveryDate,
		DeliveryTime:        in.DeliveryTime,
		SpecialInstructions: in.SpecialInstructions,
		PromoCode:           quote.PromoCode,
		Status:              domain.OrderStatusConfirmed,
		Stage:               domain.StageConfirmed,
		CanCancel:           true,
		EstimatedTime:       estimateDelivery(now, in.DeliveryDate, in.DeliveryTime),
		CreatedAt:           now,
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		return nil, err
	}

	s.scheduleProgression(o.ID)
	if s.notifier != nil {
		s.notifier.OrderConfirmed(ctx, &o)
	}
	return &o, nil
}

// GetOrder возвращает текущий снимок заказа; auth не требуется,
// трекинг работает по ссылке
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.GetByID(ctx, id)
}

// ListOrders заказы пользователя, новые первыми
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.ListByUser(ctx, userID)
}

// CancelOrder отменяет заказ владельца, пока он не ушёл в доставку.
// Проверка и мутация выполняются в одной транзакции, поэтому отмена и
// срабатывание таймера не перемешиваются.
func (s *OrderService) CancelOrder(ctx context.Context, id, userID string) (*domain.Order, error) {
	if id == "" || userID == "" {
		return nil, ErrInvalidInput
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if o.UserID == "" || o.UserID != userID {
			return ErrNotOwner
		}
		if o.Status == domain.OrderStatusCancelled {
			return ErrAlreadyCancelled
		}
		if o.Stage >= domain.StageOutForDelivery || o.Status == domain.OrderStatusDelivered {
			return ErrTooLateToCancel
		}
		now := s.clock.Now()
		o.Status = domain.OrderStatusCancelled
		o.CanCancel = false
		o.CancelledAt = &now
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("order cancelled", "order_id", updated.ID, "stage", int(updated.Stage))
	return updated, nil
}

// Reorder возвращает замороженный снимок позиций прошлого заказа,
// новый заказ при этом не создаётся
func (s *OrderService) Reorder(ctx context.Context, id, userID string) ([]domain.OrderItem, *int64, error) {
	if id == "" || userID == "" {
		return nil, nil, ErrInvalidInput
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if o.UserID == "" || o.UserID != userID {
		return nil, nil, ErrNotOwner
	}
	return o.Items, o.RestaurantID, nil
}

// scheduleProgression ставит три независимых таймера от момента создания.
// Таймеры намеренно не отменяются при отмене заказа: advanceStage сам
// проверяет состояние перед применением.
func (s *OrderService) scheduleProgression(orderID string) {
	steps := []struct {
		stage domain.OrderStage
		delay time.Duration
	}{
		{domain.StagePreparing, s.delays.Preparing},
		{domain.StageOutForDelivery, s.delays.OutForDelivery},
		{domain.StageDelivered, s.delays.Delivered},
	}
	for _, st := range steps {
		stage := st.stage
		s.clock.AfterFunc(st.delay, func() {
			s.advanceStage(orderID, stage)
		})
	}
}

// advanceStage переводит заказ на следующий этап, если он всё ещё confirmed.
// Переход после отмены или доставки — no-op.
func (s *OrderService) advanceStage(orderID string, next domain.OrderStage) {
	ctx := context.Background()
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Terminal() || next <= o.Stage {
			return nil
		}
		o.Stage = next
		if next >= domain.StageOutForDelivery {
			o.CanCancel = false
		}
		if next == domain.StageDelivered {
			o.Status = domain.OrderStatusDelivered
		}
		return s.orders.Update(ctx, o)
	})
	if err != nil {
		s.log.Error("stage transition failed", "order_id", orderID, "stage", int(next), "error", err)
		return
	}
	s.log.Info("order stage advanced", "order_id", orderID, "stage", int(next))
}

// estimateDelivery минуты до запрошенного времени доставки, не меньше 20
func estimateDelivery(now time.Time, deliveryDate, deliveryTime string) string {
	mins := 20
	if at, err := time.ParseInLocation("2006-01-02T15:04", deliveryDate+"T"+deliveryTime, now.Location()); err == nil {
		diff := int(math.Ceil(at.Sub(now).Minutes()))
		if diff > mins {
			mins = diff
		}
	}
	return fmt.Sprintf("%d minutes", mins)
}

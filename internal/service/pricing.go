package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"fooddeliver/internal/domain"
	"fooddeliver/internal/repository"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidPromoCode = errors.New("invalid promo code")
	ErrNonPositiveTotal = errors.New("invalid order total")
)

// PromoMinimumError промокод существует, но subtotal ниже его минимума
type PromoMinimumError struct {
	Code     string
	MinOrder float64
}

func (e *PromoMinimumError) Error() string {
	return fmt.Sprintf("minimum order of $%g required for this promo code", e.MinOrder)
}

// MinOrderError subtotal ниже минимального заказа ресторана
type MinOrderError struct {
	Restaurant string
	MinOrder   float64
}

func (e *MinOrderError) Error() string {
	return fmt.Sprintf("minimum order for %s is $%.2f", e.Restaurant, e.MinOrder)
}

// PriceQuote результат расчёта стоимости заказа до его создания
type PriceQuote struct {
	Subtotal  float64          `json:"subtotal"`
	Discount  float64          `json:"discount"`
	Total     float64          `json:"total"`
	PromoCode string           `json:"promoCode,omitempty"`
	PromoType domain.PromoType `json:"promoType,omitempty"`
}

// PricingService чистый расчёт стоимости заказа: subtotal, скидка, итог.
// Не держит состояния заказов, безопасен для конкурентных вызовов.
type PricingService struct {
	promos repository.PromoRepository
}

func NewPricingService(promos repository.PromoRepository) *PricingService {
	return &PricingService{promos: promos}
}

// PriceOrder валидирует корзину и считает итоговую сумму.
// Скидка не превышает subtotal, итог округляется до центов и должен быть > 0.
func (s *PricingService) PriceOrder(ctx context.Context, items []domain.OrderItem, promoCode string, restaurant *domain.Restaurant) (*PriceQuote, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, it := range items {
		if it.Name == "" || it.Price <= 0 || it.Quantity <= 0 {
			return nil, ErrInvalidInput
		}
	}

	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	subtotal = roundCents(subtotal)

	if restaurant != nil && subtotal < restaurant.MinOrder {
		return nil, &MinOrderError{Restaurant: restaurant.Name, MinOrder: restaurant.MinOrder}
	}

	quote := &PriceQuote{Subtotal: subtotal}
	if promoCode != "" {
		promo, err := s.promos.GetPromo(ctx, promoCode)
		if err != nil {
			return nil, ErrInvalidPromoCode
		}
		if subtotal < promo.MinOrder {
			return nil, &PromoMinimumError{Code: promo.Code, MinOrder: promo.MinOrder}
		}
		quote.Discount = promoDiscount(promo, subtotal)
		quote.PromoCode = promo.Code
		quote.PromoType = promo.Type
	}

	quote.Total = roundCents(quote.Subtotal - quote.Discount)
	if quote.Total <= 0 {
		return nil, ErrNonPositiveTotal
	}
	return quote, nil
}

// ValidatePromo считает скидку для уже известного subtotal (эндпоинт проверки кода)
func (s *PricingService) ValidatePromo(ctx context.Context, code string, subtotal float64) (*PriceQuote, error) {
	if strings.TrimSpace(code) == "" || subtotal < 0 {
		return nil, ErrInvalidPromoCode
	}
	promo, err := s.promos.GetPromo(ctx, code)
	if err != nil {
		return nil, ErrInvalidPromoCode
	}
	if subtotal < promo.MinOrder {
		return nil, &PromoMinimumError{Code: promo.Code, MinOrder: promo.MinOrder}
	}
	return &PriceQuote{
		Subtotal:  subtotal,
		Discount:  promoDiscount(promo, subtotal),
		Total:     roundCents(subtotal - promoDiscount(promo, subtotal)),
		PromoCode: promo.Code,
		PromoType: promo.Type,
	}, nil
}

func promoDiscount(promo *domain.PromoCode, subtotal float64) float64 {
	var d float64
	switch promo.Type {
	case domain.PromoPercentage:
		d = subtotal * promo.Discount / 100
	default:
		d = promo.Discount
	}
	if d > subtotal {
		d = subtotal
	}
	return roundCents(d)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

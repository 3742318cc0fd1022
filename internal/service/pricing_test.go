package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddeliver/internal/domain"
	"fooddeliver/internal/repository"
)

func newPricing(t *testing.T) *PricingService {
	t.Helper()
	return NewPricingService(repository.NewMemoryStore())
}

func items(price float64, qty int64) []domain.OrderItem {
	return []domain.OrderItem{{Name: "Item", Price: price, Quantity: qty}}
}

func TestPriceOrder_NoPromo(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	q, err := s.PriceOrder(ctx, items(10.00, 2), "", nil)
	require.NoError(t, err)
	assert.Equal(t, 20.00, q.Subtotal)
	assert.Equal(t, 0.00, q.Discount)
	assert.Equal(t, q.Subtotal, q.Total)
}

func TestPriceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	_, err := s.PriceOrder(ctx, nil, "", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPriceOrder_InvalidItems(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	_, err := s.PriceOrder(ctx, items(0, 1), "", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.PriceOrder(ctx, items(5, 0), "", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPriceOrder_PercentagePromo(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	q, err := s.PriceOrder(ctx, items(15.00, 4), "SAVE20", nil)
	require.NoError(t, err)
	assert.Equal(t, 60.00, q.Subtotal)
	assert.Equal(t, 12.00, q.Discount)
	assert.Equal(t, 48.00, q.Total)
}

func TestPriceOrder_FixedPromo(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	q, err := s.PriceOrder(ctx, items(10.00, 3), "FREESHIP", nil)
	require.NoError(t, err)
	assert.Equal(t, 5.00, q.Discount)
	assert.Equal(t, 25.00, q.Total)
}

func TestPriceOrder_PromoCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	q, err := s.PriceOrder(ctx, items(10.00, 2), "welcome10", nil)
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", q.PromoCode)
	assert.Equal(t, 2.00, q.Discount)
}

func TestPriceOrder_Rounding(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	// 3.33 * 3 = 9.99; 10% → 0.999, округляется до 1.00
	q, err := s.PriceOrder(ctx, items(3.33, 3), "WELCOME10", nil)
	require.NoError(t, err)
	assert.Equal(t, 9.99, q.Subtotal)
	assert.Equal(t, 1.00, q.Discount)
	assert.Equal(t, 8.99, q.Total)
}

func TestPriceOrder_UnknownPromo(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	_, err := s.PriceOrder(ctx, items(10.00, 2), "NOPE", nil)
	assert.ErrorIs(t, err, ErrInvalidPromoCode)
}

func TestPriceOrder_PromoMinimum(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	_, err := s.PriceOrder(ctx, items(10.00, 1), "SAVE20", nil)
	var promoErr *PromoMinimumError
	require.ErrorAs(t, err, &promoErr)
	assert.Equal(t, 50.0, promoErr.MinOrder)
}

func TestPriceOrder_RestaurantMinimum(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	r := &domain.Restaurant{Name: "Asian Fusion", MinOrder: 18}
	_, err := s.PriceOrder(ctx, items(7.99, 2), "", r)
	var minErr *MinOrderError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, "Asian Fusion", minErr.Restaurant)

	// ровно на минимуме проходит
	q, err := s.PriceOrder(ctx, items(9.00, 2), "", r)
	require.NoError(t, err)
	assert.Equal(t, 18.00, q.Total)
}

func TestPriceOrder_DiscountNeverExceedsSubtotal(t *testing.T) {
	ctx := context.Background()
	s := NewPricingService(promoCatalog{
		"BIGFIX": {Code: "BIGFIX", Discount: 100, Type: domain.PromoFixed, MinOrder: 0},
	})

	_, err := s.PriceOrder(ctx, items(10.00, 2), "BIGFIX", nil)
	// скидка ограничена subtotal, итог 0 — заказ отклоняется
	assert.ErrorIs(t, err, ErrNonPositiveTotal)
}

// promoCatalog маленький стаб каталога промокодов для крайних случаев,
// которых нет в seed-данных
type promoCatalog map[string]domain.PromoCode

func (p promoCatalog) GetPromo(_ context.Context, code string) (*domain.PromoCode, error) {
	if promo, ok := p[code]; ok {
		return &promo, nil
	}
	return nil, repository.ErrNotFound
}

func TestValidatePromo(t *testing.T) {
	ctx := context.Background()
	s := newPricing(t)

	q, err := s.ValidatePromo(ctx, "SAVE20", 60.00)
	require.NoError(t, err)
	assert.Equal(t, 12.00, q.Discount)
	assert.Equal(t, "SAVE20", q.PromoCode)
	assert.Equal(t, domain.PromoPercentage, q.PromoType)

	_, err = s.ValidatePromo(ctx, "SAVE20", 10.00)
	var promoErr *PromoMinimumError
	require.ErrorAs(t, err, &promoErr)
	assert.Equal(t, 50.0, promoErr.MinOrder)

	_, err = s.ValidatePromo(ctx, "NOPE", 60.00)
	assert.ErrorIs(t, err, ErrInvalidPromoCode)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddeliver/internal/repository"
)

func newCatalog(t *testing.T) *CatalogService {
	t.Helper()
	clock := newFakeClock(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC))
	return NewCatalogService(repository.NewMemoryStore(), clock)
}

func TestListRestaurants_Seeded(t *testing.T) {
	ctx := context.Background()
	s := newCatalog(t)

	list, err := s.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Pizza Paradise", list[0].Name)
	assert.Equal(t, 15.0, list[0].MinOrder)
}

func TestListMenu_FilterByRestaurant(t *testing.T) {
	ctx := context.Background()
	s := newCatalog(t)

	all, err := s.ListMenu(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 16)

	rid := int64(4)
	desserts, err := s.ListMenu(ctx, &rid)
	require.NoError(t, err)
	require.Len(t, desserts, 4)
	for _, it := range desserts {
		assert.Equal(t, rid, it.RestaurantID)
	}
}

func TestReviews_AverageRating(t *testing.T) {
	ctx := context.Background()
	s := newCatalog(t)

	_, err := s.AddReview(ctx, 1, "u1", "John", 4, "good")
	require.NoError(t, err)
	_, err = s.AddReview(ctx, 1, "u2", "Jane", 5, "")
	require.NoError(t, err)

	rid := int64(1)
	menu, err := s.ListMenu(ctx, &rid)
	require.NoError(t, err)
	for _, it := range menu {
		if it.ID == 1 {
			assert.Equal(t, 4.5, it.Rating)
			assert.Equal(t, 2, it.ReviewCount)
		} else {
			assert.Equal(t, 0.0, it.Rating)
			assert.Equal(t, 0, it.ReviewCount)
		}
	}

	reviews, err := s.ListReviews(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestAddReview_Validation(t *testing.T) {
	ctx := context.Background()
	s := newCatalog(t)

	_, err := s.AddReview(ctx, 1, "u1", "John", 0, "")
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = s.AddReview(ctx, 1, "u1", "John", 6, "")
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = s.AddReview(ctx, 999, "u1", "John", 3, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

package service

import (
	"context"
	"errors"
	"math"
	"time"

	"fooddeliver/internal/domain"
	"fooddeliver/internal/repository"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// RatedMenuItem позиция меню со сводкой отзывов
type RatedMenuItem struct {
	domain.MenuItem
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// CatalogService read-mostly каталог: рестораны, меню, отзывы
type CatalogService struct {
	repo  repository.CatalogRepository
	clock Clock
}

func NewCatalogService(repo repository.CatalogRepository, clock Clock) *CatalogService {
	return &CatalogService{repo: repo, clock: clock}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetRestaurant(ctx, id)
}

// ListMenu меню (опционально одного ресторана) со средним рейтингом,
// округлённым до одного знака
func (s *CatalogService) ListMenu(ctx context.Context, restaurantID *int64) ([]RatedMenuItem, error) {
	items, err := s.repo.ListMenu(ctx, repository.MenuFilter{RestaurantID: restaurantID})
	if err != nil {
		return nil, err
	}
	out := make([]RatedMenuItem, 0, len(items))
	for _, it := range items {
		reviews, err := s.repo.ListReviews(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		rated := RatedMenuItem{MenuItem: it, ReviewCount: len(reviews)}
		if len(reviews) > 0 {
			sum := 0
			for _, r := range reviews {
				sum += r.Rating
			}
			rated.Rating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
		}
		out = append(out, rated)
	}
	return out, nil
}

// AddReview сохраняет отзыв авторизованного пользователя о позиции меню
func (s *CatalogService) AddReview(ctx context.Context, itemID int64, userID, userName string, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.repo.GetMenuItem(ctx, itemID); err != nil {
		return nil, err
	}
	r := domain.Review{
		ItemID:    itemID,
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: s.now(),
	}
	if err := s.repo.AddReview(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *CatalogService) ListReviews(ctx context.Context, itemID int64) ([]domain.Review, error) {
	if itemID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListReviews(ctx, itemID)
}

func (s *CatalogService) now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return time.Now().UTC()
}

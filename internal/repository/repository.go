package repository

import (
	"context"
	"errors"

	"fooddeliver/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// MenuFilter параметры фильтрации меню
type MenuFilter struct {
	RestaurantID *int64
}

// CatalogRepository каталог ресторанов, меню и отзывов
type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	ListMenu(ctx context.Context, f MenuFilter) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error)
	AddReview(ctx context.Context, r *domain.Review) error
	ListReviews(ctx context.Context, itemID int64) ([]domain.Review, error)
}

// PromoRepository статический каталог промокодов, поиск без учёта регистра
type PromoRepository interface {
	GetPromo(ctx context.Context, code string) (*domain.PromoCode, error)
}

// AccountRepository пользователи, сессии, избранное и адреса
type AccountRepository interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	CreateSession(ctx context.Context, token, userID string) error
	ResolveSession(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error

	AddFavorite(ctx context.Context, userID string, itemID int64) error
	RemoveFavorite(ctx context.Context, userID string, itemID int64) error
	ListFavorites(ctx context.Context, userID string) ([]int64, error)

	AddAddress(ctx context.Context, userID string, a *domain.Address) error
	ListAddresses(ctx context.Context, userID string) ([]domain.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID string) error
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// TxManager абстракция транзакции. Для in-memory — глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

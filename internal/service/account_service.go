package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fooddeliver/internal/domain"
	"fooddeliver/internal/repository"
)

var (
	ErrEmailTaken   = errors.New("email already exists")
	ErrInvalidCreds = errors.New("invalid credentials")
)

// AccountService регистрация и вход, сессии, избранное и адреса.
// Сессии — непрозрачные bearer-токены в памяти: logout отзывает токен.
type AccountService struct {
	repo    repository.AccountRepository
	catalog repository.CatalogRepository
	clock   Clock
}

func NewAccountService(repo repository.AccountRepository, catalog repository.CatalogRepository, clock Clock) *AccountService {
	return &AccountService{repo: repo, catalog: catalog, clock: clock}
}

// Register создаёт пользователя и сразу открывает сессию
func (s *AccountService) Register(ctx context.Context, name, email, password, phone string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}
	if _, err := s.repo.FindUserByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := domain.User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Phone:        phone,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.repo.CreateUser(ctx, &u); err != nil {
		return nil, "", err
	}
	token, err := s.openSession(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// Login проверяет пароль и открывает новую сессию
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := s.openSession(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate превращает bearer-токен в id пользователя
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, repository.ErrNotFound
	}
	userID, err := s.repo.ResolveSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUser(ctx, userID)
}

// Logout отзывает сессию; повторный вызов безвреден
func (s *AccountService) Logout(ctx context.Context, token string) error {
	return s.repo.DeleteSession(ctx, token)
}

func (s *AccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *AccountService) openSession(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.repo.CreateSession(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}

// Favorites

func (s *AccountService) AddFavorite(ctx context.Context, userID string, itemID int64) error {
	if itemID <= 0 {
		return ErrInvalidInput
	}
	return s.repo.AddFavorite(ctx, userID, itemID)
}

func (s *AccountService) RemoveFavorite(ctx context.Context, userID string, itemID int64) error {
	if itemID <= 0 {
		return ErrInvalidInput
	}
	return s.repo.RemoveFavorite(ctx, userID, itemID)
}

// ListFavorites разворачивает избранные id в позиции меню
func (s *AccountService) ListFavorites(ctx context.Context, userID string) ([]domain.MenuItem, error) {
	ids, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MenuItem, 0, len(ids))
	for _, id := range ids {
		if it, err := s.catalog.GetMenuItem(ctx, id); err == nil {
			out = append(out, *it)
		}
	}
	return out, nil
}

// Addresses

func (s *AccountService) AddAddress(ctx context.Context, userID, address, label string) (*domain.Address, error) {
	if address == "" {
		return nil, ErrInvalidInput
	}
	if label == "" {
		label = "Home"
	}
	a := domain.Address{Address: address, Label: label}
	if err := s.repo.AddAddress(ctx, userID, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AccountService) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	return s.repo.ListAddresses(ctx, userID)
}

func (s *AccountService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	if addressID == "" {
		return ErrInvalidInput
	}
	return s.repo.DeleteAddress(ctx, userID, addressID)
}

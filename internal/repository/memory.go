package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fooddeliver/internal/domain"
)

// MemoryStore объединённое in-memory хранилище: каталог, промокоды,
// аккаунты и заказы живут в памяти процесса (рестарт теряет всё — это
// принятое ограничение демо).
type MemoryStore struct {
	mu sync.RWMutex

	restaurants []domain.Restaurant
	menu        []domain.MenuItem
	promos      map[string]domain.PromoCode

	usersByID    map[string]domain.User
	usersByEmail map[string]string
	sessions     map[string]string
	favorites    map[string][]int64
	addresses    map[string][]domain.Address
	reviews      map[int64][]domain.Review

	ordersByID map[string]domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		restaurants:  seedRestaurants(),
		menu:         seedMenu(),
		promos:       seedPromos(),
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
		sessions:     make(map[string]string),
		favorites:    make(map[string][]int64),
		addresses:    make(map[string][]domain.Address),
		reviews:      make(map[int64][]domain.Review),
		ordersByID:   make(map[string]domain.Order),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var (
	_ CatalogRepository = (*MemoryStore)(nil)
	_ PromoRepository   = (*MemoryStore)(nil)
	_ AccountRepository = (*MemoryStore)(nil)
)

// OrderRepository реализован отдельным типом MemoryOrders

// CatalogRepository implementation

func (m *MemoryStore) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Restaurant, len(m.restaurants))
	copy(out, m.restaurants)
	return out, nil
}

func (m *MemoryStore) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, r := range m.restaurants {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListMenu(ctx context.Context, f MenuFilter) ([]domain.MenuItem, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.MenuItem, 0, len(m.menu))
	for _, it := range m.menu {
		if f.RestaurantID != nil && it.RestaurantID != *f.RestaurantID {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *MemoryStore) GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, it := range m.menu {
		if it.ID == id {
			cp := it
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) AddReview(ctx context.Context, r *domain.Review) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	m.reviews[r.ItemID] = append(m.reviews[r.ItemID], *r)
	return nil
}

func (m *MemoryStore) ListReviews(ctx context.Context, itemID int64) ([]domain.Review, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	rs := m.reviews[itemID]
	out := make([]domain.Review, len(rs))
	copy(out, rs)
	return out, nil
}

// PromoRepository implementation

func (m *MemoryStore) GetPromo(ctx context.Context, code string) (*domain.PromoCode, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.promos[strings.ToUpper(code)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

// AccountRepository implementation

func (m *MemoryStore) CreateUser(ctx context.Context, u *domain.User) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m.usersByID[u.ID] = *u
	m.usersByEmail[strings.ToLower(u.Email)] = u.ID
	return nil
}

func (m *MemoryStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	u, ok := m.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (m *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	id, ok := m.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.usersByID[id]
	return &u, nil
}

func (m *MemoryStore) CreateSession(ctx context.Context, token, userID string) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	m.sessions[token] = userID
	return nil
}

func (m *MemoryStore) ResolveSession(ctx context.Context, token string) (string, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	userID, ok := m.sessions[token]
	if !ok {
		return "", ErrNotFound
	}
	return userID, nil
}

func (m *MemoryStore) DeleteSession(ctx context.Context, token string) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	delete(m.sessions, token)
	return nil
}

func (m *MemoryStore) AddFavorite(ctx context.Context, userID string, itemID int64) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	for _, id := range m.favorites[userID] {
		if id == itemID {
			return nil
		}
	}
	m.favorites[userID] = append(m.favorites[userID], itemID)
	return nil
}

func (m *MemoryStore) RemoveFavorite(ctx context.Context, userID string, itemID int64) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	cur := m.favorites[userID]
	next := cur[:0]
	for _, id := range cur {
		if id != itemID {
			next = append(next, id)
		}
	}
	m.favorites[userID] = next
	return nil
}

func (m *MemoryStore) ListFavorites(ctx context.Context, userID string) ([]int64, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	cur := m.favorites[userID]
	out := make([]int64, len(cur))
	copy(out, cur)
	return out, nil
}

func (m *MemoryStore) AddAddress(ctx context.Context, userID string, a *domain.Address) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.IsDefault = len(m.addresses[userID]) == 0
	m.addresses[userID] = append(m.addresses[userID], *a)
	return nil
}

func (m *MemoryStore) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	cur := m.addresses[userID]
	out := make([]domain.Address, len(cur))
	copy(out, cur)
	return out, nil
}

func (m *MemoryStore) DeleteAddress(ctx context.Context, userID, addressID string) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	cur := m.addresses[userID]
	next := cur[:0]
	for _, a := range cur {
		if a.ID != addressID {
			next = append(next, a)
		}
	}
	m.addresses[userID] = next
	return nil
}

// OrderRepository implementation on wrapper type
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	mo.store.ordersByID[o.ID] = *o
	return nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	o, ok := mo.store.ordersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (mo *MemoryOrders) Update(ctx context.Context, o *domain.Order) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	if _, ok := mo.store.ordersByID[o.ID]; !ok {
		return ErrNotFound
	}
	mo.store.ordersByID[o.ID] = *o
	return nil
}

// ListByUser возвращает заказы пользователя, новые первыми
func (mo *MemoryOrders) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	out := make([]domain.Order, 0)
	for _, o := range mo.store.ordersByID {
		if o.UserID != "" && o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}

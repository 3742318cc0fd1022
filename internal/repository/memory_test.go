package repository

import (
	"context"
	"testing"
	"time"

	"fooddeliver/internal/domain"
)

func TestMemoryOrders_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orders := NewMemoryOrders(store)

	o := domain.Order{
		UserID: "u1",
		Items:  []domain.OrderItem{{Name: "Pizza", Price: 10, Quantity: 1}},
		Status: domain.OrderStatusConfirmed,
		Stage:  domain.StageConfirmed,
	}
	if err := orders.Create(ctx, &o); err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID == "" {
		t.Fatalf("no id")
	}

	got, err := orders.GetByID(ctx, o.ID)
	if err != nil || got.ID != o.ID {
		t.Fatalf("get: %v", err)
	}

	got.Stage = domain.StagePreparing
	if err := orders.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := orders.GetByID(ctx, o.ID)
	if again.Stage != domain.StagePreparing {
		t.Fatalf("stage not updated")
	}

	if _, err := orders.GetByID(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryOrders_ListByUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orders := NewMemoryOrders(store)

	base := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	mk := func(userID string, offset time.Duration) string {
		o := domain.Order{UserID: userID, CreatedAt: base.Add(offset)}
		if err := orders.Create(ctx, &o); err != nil {
			t.Fatal(err)
		}
		return o.ID
	}
	first := mk("u1", 0)
	second := mk("u1", time.Minute)
	mk("u2", 2*time.Minute)
	mk("", 3*time.Minute) // гостевой заказ не попадает ни в один список

	list, err := orders.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(list))
	}
	if list[0].ID != second || list[1].ID != first {
		t.Fatalf("expected newest first")
	}

	empty, _ := orders.ListByUser(ctx, "")
	if len(empty) != 0 {
		t.Fatalf("guest orders must not be listed")
	}
}

func TestGetPromo_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p, err := store.GetPromo(ctx, "save20")
	if err != nil {
		t.Fatalf("get promo: %v", err)
	}
	if p.Code != "SAVE20" || p.Type != domain.PromoPercentage || p.MinOrder != 50 {
		t.Fatalf("unexpected promo: %+v", p)
	}

	if _, err := store.GetPromo(ctx, "NOPE"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalog_Seeded(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rs, _ := store.ListRestaurants(ctx)
	if len(rs) != 4 {
		t.Fatalf("expected 4 restaurants, got %d", len(rs))
	}

	r, err := store.GetRestaurant(ctx, 2)
	if err != nil || r.Name != "Burger Junction" {
		t.Fatalf("get restaurant: %v %v", err, r)
	}
	if _, err := store.GetRestaurant(ctx, 99); err != ErrNotFound {
		t.Fatalf("expected not found")
	}

	rid := int64(3)
	menu, _ := store.ListMenu(ctx, MenuFilter{RestaurantID: &rid})
	if len(menu) != 4 {
		t.Fatalf("expected 4 items for restaurant 3, got %d", len(menu))
	}
	for _, it := range menu {
		if it.RestaurantID != rid {
			t.Fatalf("filter leak: %+v", it)
		}
	}
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.CreateSession(ctx, "tok", "u1"); err != nil {
		t.Fatal(err)
	}
	userID, err := store.ResolveSession(ctx, "tok")
	if err != nil || userID != "u1" {
		t.Fatalf("resolve: %v %v", userID, err)
	}
	if err := store.DeleteSession(ctx, "tok"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.ResolveSession(ctx, "tok"); err != ErrNotFound {
		t.Fatalf("expected revoked session")
	}
}

func TestUsers_EmailLookup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	u := domain.User{Name: "John", Email: "john@example.com"}
	if err := store.CreateUser(ctx, &u); err != nil {
		t.Fatal(err)
	}
	got, err := store.FindUserByEmail(ctx, "JOHN@example.com")
	if err != nil || got.ID != u.ID {
		t.Fatalf("email lookup: %v", err)
	}
}

func TestMemoryTx_AtomicCancel(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orders := NewMemoryOrders(store)
	tx := NewMemoryTx(store)

	o := domain.Order{UserID: "u1", Status: domain.OrderStatusConfirmed, Stage: domain.StageConfirmed}
	if err := orders.Create(ctx, &o); err != nil {
		t.Fatal(err)
	}

	// check-then-act под одной блокировкой
	err := tx.WithTransaction(ctx, func(ctx context.Context) error {
		cur, err := orders.GetByID(ctx, o.ID)
		if err != nil {
			return err
		}
		if cur.Status != domain.OrderStatusConfirmed {
			t.Fatalf("precondition")
		}
		cur.Status = domain.OrderStatusCancelled
		cur.CanCancel = false
		return orders.Update(ctx, cur)
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	got, _ := orders.GetByID(context.Background(), o.ID)
	if got.Status != domain.OrderStatusCancelled || got.CanCancel {
		t.Fatalf("tx not applied: %+v", got)
	}
}

package domain

import "time"

// Restaurant запись каталога ресторанов
type Restaurant struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	MinOrder     float64 `json:"minOrder"`
	Cuisine      string  `json:"cuisine"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	OpenTime     string  `json:"openTime"`
	CloseTime    string  `json:"closeTime"`
	IsOpen       bool    `json:"isOpen"`
}

// MenuItem позиция меню ресторана
type MenuItem struct {
	ID           int64    `json:"id"`
	RestaurantID int64    `json:"restaurantId"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	Dietary      []string `json:"dietary"`
	IsAvailable  bool     `json:"isAvailable"`
	Toppings     []string `json:"toppings"`
}

// Review отзыв пользователя о позиции меню
type Review struct {
	ID        string    `json:"id"`
	ItemID    int64     `json:"itemId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// User учётная запись пользователя
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Address сохранённый адрес доставки пользователя
type Address struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	Label     string `json:"label"`
	IsDefault bool   `json:"isDefault"`
}

// PromoType тип скидки промокода
type PromoType string

const (
	PromoPercentage PromoType = "percentage"
	PromoFixed      PromoType = "fixed"
)

// PromoCode правило скидки из статического каталога. Код нормализуется
// к верхнему регистру, MinOrder — минимальный подходящий subtotal.
type PromoCode struct {
	Code     string    `json:"code"`
	Discount float64   `json:"discount"`
	Type     PromoType `json:"type"`
	MinOrder float64   `json:"minOrder"`
}

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusDelivered OrderStatus = "delivered"
)

// OrderStage этап заказа в конвейере доставки, 1..4
type OrderStage int

const (
	StageConfirmed      OrderStage = 1
	StagePreparing      OrderStage = 2
	StageOutForDelivery OrderStage = 3
	StageDelivered      OrderStage = 4
)

// OrderItem позиция в заказе — снимок на момент оформления
type OrderItem struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int64    `json:"quantity"`
	Toppings []string `json:"toppings,omitempty"`
}

// Order сущность заказа. Ценовые поля фиксируются при создании и больше
// не пересчитываются; stage/status меняет только lifecycle-менеджер.
type Order struct {
	ID                  string      `json:"id"`
	RestaurantID        *int64      `json:"restaurantId,omitempty"`
	UserID              string      `json:"userId,omitempty"`
	Items               []OrderItem `json:"items"`
	Subtotal            float64     `json:"subtotal"`
	Discount            float64     `json:"discount"`
	Total               float64     `json:"total"`
	Name                string      `json:"name"`
	Phone               string      `json:"phone"`
	Email               string      `json:"email"`
	Address             string      `json:"address"`
	DeliveryDate        string      `json:"deliveryDate"`
	DeliveryTime        string      `json:"deliveryTime"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
	PromoCode           string      `json:"promoCode,omitempty"`
	Status              OrderStatus `json:"status"`
	Stage               OrderStage  `json:"stage"`
	CanCancel           bool        `json:"canCancel"`
	EstimatedTime       string      `json:"estimatedTime"`
	CreatedAt           time.Time   `json:"createdAt"`
	CancelledAt         *time.Time  `json:"cancelledAt,omitempty"`
}

// Terminal — после cancelled/delivered переходы этапов запрещены
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusCancelled || o.Status == OrderStatusDelivered
}

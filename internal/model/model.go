// Package model содержит доменные сущности сервиса ресторана.
package model

import "time"

// MenuItem описывает одну позицию меню.
type MenuItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Menu описывает полное меню ресторана, сгруппированное по категориям.
type Menu struct {
	RestaurantName string     `json:"restaurant_name"`
	Starters       []MenuItem `json:"starters"`
	Mains          []MenuItem `json:"mains"`
	Desserts       []MenuItem `json:"desserts"`
	Drinks         []MenuItem `json:"drinks"`
}

// OrderStatus описывает статус заказа.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// OrderItem описывает одну позицию заказа.
// Позиция не сверяется с каталогом: гость может заказать блюдо не из меню.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order описывает сохранённый заказ.
type Order struct {
	OrderNumber int
	SessionID   string
	Items       []OrderItem
	Total       float64
	Status      OrderStatus
	CreatedAt   time.Time
}

// ChatExchange описывает один обмен сообщениями с Тоби. В БД не сохраняется.
type ChatExchange struct {
	Message          string
	SessionID        string
	HasMagicPassword bool
	Response         string
}

// CreatedOrder описывает результат успешного создания заказа.
type CreatedOrder struct {
	OrderNumber int
	SessionID   string
	Items       []OrderItem
	Total       float64
	Message     string
}

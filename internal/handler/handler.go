// Package handler содержит HTTP-обработчики API сервиса ресторана.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-system/internal/config"
	"github.com/mmeshcher/restaurant-system/internal/model"
	"github.com/mmeshcher/restaurant-system/internal/repository"
	"github.com/mmeshcher/restaurant-system/internal/service"
)

const version = "1.0.0"

const maxMessageLength = 500

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	Ping(ctx context.Context) error
	Menu() model.Menu
	Chat(ctx context.Context, message, sessionID string) (*model.ChatExchange, error)
	CreateOrder(ctx context.Context, items []model.OrderItem, sessionID string) (*model.CreatedOrder, error)
	GetOrder(ctx context.Context, orderNumber int) (*model.Order, error)
}

// Handler реализует HTTP-обработчики API сервиса ресторана.
type Handler struct {
	service Service
	logger  *zap.Logger
	cfg     *config.Config
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger, cfg *config.Config) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
		cfg:     cfg,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}

type rootResponse struct {
	Status     string `json:"status"`
	Restaurant string `json:"restaurant"`
	Message    string `json:"message"`
	Version    string `json:"version"`
}

// Root возвращает базовую информацию о сервисе.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, rootResponse{
		Status:     "running",
		Restaurant: h.cfg.RestaurantName,
		Message:    "Tobi is ready to serve you!",
		Version:    version,
	})
}

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Database    string `json:"database"`
	Version     string `json:"version"`
}

// Health возвращает статус сервиса и доступность хранилища.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed: database disconnected", zap.Error(err))
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:      "healthy",
		Environment: h.cfg.Environment,
		Database:    "connected",
		Version:     version,
	})
}

// GetMenu возвращает полное меню ресторана.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Menu())
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response         string `json:"response"`
	SessionID        string `json:"session_id"`
	HasMagicPassword bool   `json:"has_magic_password"`
	Restaurant       string `json:"restaurant"`
}

// Chat обрабатывает сообщение гостя и возвращает ответ Тоби.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if length := utf8.RuneCountInString(req.Message); length < 1 || length > maxMessageLength {
		http.Error(w, "message must be between 1 and 500 characters", http.StatusBadRequest)
		return
	}

	exchange, err := h.service.Chat(r.Context(), req.Message, req.SessionID)
	if err != nil {
		h.logger.Error("chat error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, chatResponse{
		Response:         exchange.Response,
		SessionID:        exchange.SessionID,
		HasMagicPassword: exchange.HasMagicPassword,
		Restaurant:       h.cfg.RestaurantName,
	})
}

type orderItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity *int    `json:"quantity"`
}

type orderRequest struct {
	Items     []orderItemRequest `json:"items"`
	SessionID string             `json:"session_id"`
}

type orderResponse struct {
	Success     bool              `json:"success"`
	OrderNumber int               `json:"order_number"`
	Items       []model.OrderItem `json:"items"`
	Total       float64           `json:"total"`
	Message     string            `json:"message"`
}

// CreateOrder создаёт новый заказ.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if len(req.Items) == 0 {
		http.Error(w, "order must contain at least one item", http.StatusBadRequest)
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Price <= 0 {
			http.Error(w, "item price must be positive", http.StatusBadRequest)
			return
		}

		// Отсутствующее quantity трактуется как единица, явный ноль — ошибка.
		quantity := 1
		if item.Quantity != nil {
			if *item.Quantity <= 0 {
				http.Error(w, "item quantity must be positive", http.StatusBadRequest)
				return
			}
			quantity = *item.Quantity
		}

		items = append(items, model.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: quantity,
		})
	}

	created, err := h.service.CreateOrder(r.Context(), items, req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repository.ErrOrderExists):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			h.logger.Error("create order error", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, orderResponse{
		Success:     true,
		OrderNumber: created.OrderNumber,
		Items:       created.Items,
		Total:       created.Total,
		Message:     created.Message,
	})
}

type orderStatusResponse struct {
	OrderNumber int               `json:"order_number"`
	Items       []model.OrderItem `json:"items"`
	Total       float64           `json:"total"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"created_at"`
}

// GetOrder возвращает сохранённый заказ по его номеру.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		http.Error(w, "order number must be an integer", http.StatusBadRequest)
		return
	}

	order, err := h.service.GetOrder(r.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			http.Error(w, fmt.Sprintf("Order #%d not found", orderNumber), http.StatusNotFound)
			return
		}
		h.logger.Error("get order error", zap.Error(err), zap.Int("order", orderNumber))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, orderStatusResponse{
		OrderNumber: order.OrderNumber,
		Items:       order.Items,
		Total:       order.Total,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	})
}

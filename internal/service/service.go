// Package service реализует бизнес-логику сервиса ресторана.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-system/internal/config"
	"github.com/mmeshcher/restaurant-system/internal/menu"
	"github.com/mmeshcher/restaurant-system/internal/model"
	"github.com/mmeshcher/restaurant-system/internal/numbering"
	"github.com/mmeshcher/restaurant-system/internal/tobi"
)

// ErrEmptyOrder возвращается при попытке создать заказ без позиций.
var ErrEmptyOrder = errors.New("order must contain at least one item")

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	Ping(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	CreateOrder(ctx context.Context, orderNumber int, sessionID string, items []model.OrderItem, total decimal.Decimal) error
	GetOrder(ctx context.Context, orderNumber int) (*model.Order, error)
}

// Generator описывает внешний генератор текста для ответов Тоби.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service содержит бизнес-логику сервиса ресторана.
type Service struct {
	repo      Repository
	selector  *tobi.Selector
	generator Generator
	cfg       *config.Config
	logger    *zap.Logger
}

// NewService создаёт новый сервис. Генератор может быть nil:
// тогда ответы Тоби всегда строятся по шаблонам.
func NewService(repo Repository, selector *tobi.Selector, generator Generator, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		selector:  selector,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// Ping проверяет доступность хранилища заказов.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Menu возвращает полное меню ресторана.
func (s *Service) Menu() model.Menu {
	return menu.Catalog(s.cfg.RestaurantName)
}

// Chat формирует ответ Тоби на сообщение гостя.
// Ошибка внешнего генератора наружу не выходит: при любом сбое,
// таймауте или пустом ответе используются шаблоны.
func (s *Service) Chat(ctx context.Context, message, sessionID string) (*model.ChatExchange, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	hasMagicPassword := s.cfg.EnableMagicPassword &&
		strings.Contains(strings.ToLower(message), strings.ToLower(s.cfg.MagicPassword))

	response := ""
	if s.generator != nil {
		prompt := s.selector.Prompt(message, s.cfg.RestaurantName, hasMagicPassword)
		text, err := s.generator.Generate(ctx, prompt)
		switch {
		case err != nil:
			s.logger.Warn("llm generation failed, falling back to templates", zap.Error(err))
		case text == "":
			s.logger.Warn("llm returned empty response, falling back to templates")
		default:
			response = text
		}
	}

	if response == "" {
		response = s.selector.SelectResponse(message, hasMagicPassword)
	}

	return &model.ChatExchange{
		Message:          message,
		SessionID:        sessionID,
		HasMagicPassword: hasMagicPassword,
		Response:         response,
	}, nil
}

// CreateOrder создаёт заказ: считает сумму, выбирает следующий номер из
// последовательности и сохраняет заказ. Гонка между чтением количества заказов
// и вставкой допускается: при занятом номере хранилище вернёт ErrOrderExists.
func (s *Service) CreateOrder(ctx context.Context, items []model.OrderItem, sessionID string) (*model.CreatedOrder, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orderNumber := numbering.NextOrderNumber(count)

	if err := s.repo.CreateOrder(ctx, orderNumber, sessionID, items, total); err != nil {
		return nil, err
	}

	return &model.CreatedOrder{
		OrderNumber: orderNumber,
		SessionID:   sessionID,
		Items:       items,
		Total:       total.InexactFloat64(),
		Message:     fmt.Sprintf("Order #%d confirmed! Your food will be ready shortly.", orderNumber),
	}, nil
}

// GetOrder возвращает сохранённый заказ по его номеру.
func (s *Service) GetOrder(ctx context.Context, orderNumber int) (*model.Order, error) {
	return s.repo.GetOrder(ctx, orderNumber)
}

package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/restaurant-system/internal/config"
	"github.com/mmeshcher/restaurant-system/internal/menu"
	"github.com/mmeshcher/restaurant-system/internal/model"
	"github.com/mmeshcher/restaurant-system/internal/repository"
	"github.com/mmeshcher/restaurant-system/internal/tobi"
)

type stubRepo struct {
	count    int
	countErr error

	createErr error

	createdNumber    int
	createdSessionID string
	createdItems     []model.OrderItem
	createdTotal     decimal.Decimal

	order    *model.Order
	orderErr error

	pingErr error
}

func (s *stubRepo) Close() error { return nil }

func (s *stubRepo) Ping(ctx context.Context) error { return s.pingErr }

func (s *stubRepo) Count(ctx context.Context) (int, error) {
	return s.count, s.countErr
}

func (s *stubRepo) CreateOrder(ctx context.Context, orderNumber int, sessionID string, items []model.OrderItem, total decimal.Decimal) error {
	s.createdNumber = orderNumber
	s.createdSessionID = sessionID
	s.createdItems = items
	s.createdTotal = total
	return s.createErr
}

func (s *stubRepo) GetOrder(ctx context.Context, orderNumber int) (*model.Order, error) {
	return s.order, s.orderErr
}

type stubGenerator struct {
	text string
	err  error

	prompt string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

func testConfig() *config.Config {
	return &config.Config{
		RestaurantName:      "The Common House",
		MagicPassword:       "i'm on yelp",
		EnableMagicPassword: true,
	}
}

func newTestService(repo Repository, generator Generator) *Service {
	selector := tobi.NewSelector(menu.Categories(), rand.New(rand.NewSource(1)))
	return NewService(repo, selector, generator, testConfig(), zap.NewNop())
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	svc := newTestService(&stubRepo{}, nil)

	_, err := svc.CreateOrder(context.Background(), nil, "")
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestCreateOrder_TotalComputedExactly(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo, nil)

	items := []model.OrderItem{
		{Name: "House Smash Burger", Price: 16.00, Quantity: 2},
		{Name: "Truffle Fries", Price: 12.00, Quantity: 1},
	}

	created, err := svc.CreateOrder(context.Background(), items, "sess-1")
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if created.Total != 44.00 {
		t.Fatalf("Total = %v, want 44.00", created.Total)
	}
	if !repo.createdTotal.Equal(decimal.NewFromInt(44)) {
		t.Fatalf("stored total = %v, want 44", repo.createdTotal)
	}
	if created.Message != "Order #1732 confirmed! Your food will be ready shortly." {
		t.Fatalf("unexpected confirmation message: %q", created.Message)
	}
}

func TestCreateOrder_NoFloatDrift(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo, nil)

	// 0.1 * 3 в чистом float64 дал бы 0.30000000000000004.
	items := []model.OrderItem{{Name: "Penny Candy", Price: 0.1, Quantity: 3}}

	created, err := svc.CreateOrder(context.Background(), items, "")
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if created.Total != 0.3 {
		t.Fatalf("Total = %v, want 0.3", created.Total)
	}
}

func TestCreateOrder_NumberFromSequence(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "first order", count: 0, want: 1732},
		{name: "second order", count: 1, want: 1735},
		{name: "wraps after full cycle", count: 21, want: 1735},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{count: tt.count}
			svc := newTestService(repo, nil)

			created, err := svc.CreateOrder(context.Background(), []model.OrderItem{{Name: "x", Price: 1, Quantity: 1}}, "")
			if err != nil {
				t.Fatalf("CreateOrder error: %v", err)
			}
			if created.OrderNumber != tt.want {
				t.Fatalf("OrderNumber = %d, want %d", created.OrderNumber, tt.want)
			}
		})
	}
}

func TestCreateOrder_ConflictPropagated(t *testing.T) {
	repo := &stubRepo{createErr: repository.ErrOrderExists}
	svc := newTestService(repo, nil)

	_, err := svc.CreateOrder(context.Background(), []model.OrderItem{{Name: "x", Price: 1, Quantity: 1}}, "")
	if !errors.Is(err, repository.ErrOrderExists) {
		t.Fatalf("expected ErrOrderExists, got %v", err)
	}
}

func TestCreateOrder_GeneratesSessionID(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo, nil)

	created, err := svc.CreateOrder(context.Background(), []model.OrderItem{{Name: "x", Price: 1, Quantity: 1}}, "")
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if created.SessionID == "" || repo.createdSessionID == "" {
		t.Fatalf("session id must be generated when absent")
	}
}

func TestChat_TemplateResponseWithoutGenerator(t *testing.T) {
	svc := newTestService(&stubRepo{}, nil)

	exchange, err := svc.Chat(context.Background(), "hello", "sess-1")
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if exchange.Response == "" {
		t.Fatalf("response must not be empty")
	}
	if exchange.SessionID != "sess-1" {
		t.Fatalf("SessionID = %q, want sess-1", exchange.SessionID)
	}
	if exchange.HasMagicPassword {
		t.Fatalf("plain greeting must not set the magic password flag")
	}
}

func TestChat_MagicPasswordDetected(t *testing.T) {
	svc := newTestService(&stubRepo{}, nil)

	exchange, err := svc.Chat(context.Background(), "by the way, I'M ON YELP right now", "")
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if !exchange.HasMagicPassword {
		t.Fatalf("magic password must be detected case-insensitively")
	}
	if exchange.SessionID == "" {
		t.Fatalf("session id must be generated when absent")
	}
}

func TestChat_MagicPasswordDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.EnableMagicPassword = false

	selector := tobi.NewSelector(menu.Categories(), rand.New(rand.NewSource(1)))
	svc := NewService(&stubRepo{}, selector, nil, cfg, zap.NewNop())

	exchange, err := svc.Chat(context.Background(), "i'm on yelp", "")
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if exchange.HasMagicPassword {
		t.Fatalf("disabled magic password must never set the flag")
	}
}

func TestChat_GeneratorResponseUsed(t *testing.T) {
	gen := &stubGenerator{text: "Yo! Stellar choice coming up!"}
	svc := newTestService(&stubRepo{}, gen)

	exchange, err := svc.Chat(context.Background(), "surprise me", "")
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if exchange.Response != gen.text {
		t.Fatalf("Response = %q, want generator text", exchange.Response)
	}
	if gen.prompt == "" {
		t.Fatalf("generator must receive the menu prompt")
	}
}

func TestChat_GeneratorErrorFallsBackToTemplates(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	svc := newTestService(&stubRepo{}, gen)

	exchange, err := svc.Chat(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("generator failure must not surface: %v", err)
	}
	if exchange.Response == "" {
		t.Fatalf("fallback response must not be empty")
	}
}

func TestChat_GeneratorEmptyFallsBackToTemplates(t *testing.T) {
	gen := &stubGenerator{text: ""}
	svc := newTestService(&stubRepo{}, gen)

	exchange, err := svc.Chat(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if exchange.Response == "" {
		t.Fatalf("fallback response must not be empty")
	}
}

func TestMenu_UsesConfiguredRestaurantName(t *testing.T) {
	svc := newTestService(&stubRepo{}, nil)

	m := svc.Menu()
	if m.RestaurantName != "The Common House" {
		t.Fatalf("RestaurantName = %q, want The Common House", m.RestaurantName)
	}
	if len(m.Starters) == 0 {
		t.Fatalf("menu must contain starters")
	}
}

func TestGetOrder_PassThrough(t *testing.T) {
	repo := &stubRepo{orderErr: repository.ErrOrderNotFound}
	svc := newTestService(repo, nil)

	_, err := svc.GetOrder(context.Background(), 9999)
	if !errors.Is(err, repository.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

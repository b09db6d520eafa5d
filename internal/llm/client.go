// Package llm предоставляет клиент генерации текста через llama-server.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 30 * time.Second

// Client инкапсулирует HTTP-взаимодействие с llama-server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type completionRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature float64  `json:"temperature"`
	Stop        []string `json:"stop"`
}

type completionResponse struct {
	Content string `json:"content"`
}

// NewClient создаёт HTTP-клиент для обращения к llama-server по указанному адресу.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Generate запрашивает у llama-server продолжение указанного промпта.
// Пустой ответ не считается ошибкой: решение об откате на шаблоны принимает вызывающий.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.baseURL == "" {
		return "", fmt.Errorf("llm client not configured")
	}

	base := c.baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	body, err := json.Marshal(completionRequest{
		Prompt:      prompt,
		MaxTokens:   100,
		Temperature: 0.7,
		Stop:        []string{"\n", "Customer:", "Tobi:"},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/completion", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return strings.TrimSpace(result.Content), nil
}

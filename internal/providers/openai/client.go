package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"prodgen/internal/domain"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultModel       = "gpt-3.5-turbo"
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
	defaultTimeout     = 30 * time.Second

	imageCount = 1
	imageSize  = "1024x1024"
)

// Options configures the client. Zero values fall back to the documented
// defaults; only the API key is mandatory.
type Options struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature *float64
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Client talks to the OpenAI REST API. One invocation makes exactly one
// upstream call; retries, if wanted, belong to the caller.
type Client struct {
	apiKey      string
	model       string
	baseURL     string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	client      *http.Client
}

func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultModel
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := defaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		apiKey:      strings.TrimSpace(opts.APIKey),
		model:       model,
		baseURL:     baseURL,
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     timeout,
		client:      client,
	}, nil
}

// Params overrides the configured decoding parameters for a single call.
// Zero values keep the client defaults.
type Params struct {
	Model       string
	MaxTokens   int
	Temperature *float64
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type imageRequest struct {
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// GenerateText sends one chat completion request and returns the raw model
// output. system frames the assistant role; prompt is the user instruction.
func (c *Client) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	return c.GenerateTextWithParams(ctx, system, prompt, Params{})
}

// GenerateTextWithParams is GenerateText with per-call decoding overrides.
func (c *Client) GenerateTextWithParams(ctx context.Context, system, prompt string, p Params) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.Validationf("prompt must not be empty")
	}

	model := p.Model
	if model == "" {
		model = c.model
	}
	maxTokens := p.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}
	temperature := c.temperature
	if p.Temperature != nil {
		temperature = *p.Temperature
	}

	payload := chatRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	if system != "" {
		payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: system})
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "user", Content: prompt})

	var out chatResponse
	if err := c.post(ctx, "/chat/completions", payload, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", domain.Upstream(0, nil, "completion returned no choices")
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", domain.Upstream(0, nil, "completion returned empty content")
	}
	return text, nil
}

// GenerateImage requests a single product image and returns its URL.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.Validationf("prompt must not be empty")
	}

	payload := imageRequest{Prompt: prompt, N: imageCount, Size: imageSize}
	var out imageResponse
	if err := c.post(ctx, "/images/generations", payload, &out); err != nil {
		return "", err
	}
	if len(out.Data) == 0 || strings.TrimSpace(out.Data[0].URL) == "" {
		return "", domain.Upstream(0, nil, "image generation returned no url")
	}
	return out.Data[0].URL, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return domain.Upstream(0, err, "encode request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return domain.Upstream(0, err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.Upstream(0, err, "openai call timed out after %s", c.timeout)
		}
		return domain.Upstream(0, err, "openai request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 300 {
		msg := fmt.Sprintf("openai status %d", resp.StatusCode)
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			msg = fmt.Sprintf("openai status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return domain.Upstream(resp.StatusCode, nil, "%s", msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.Upstream(resp.StatusCode, err, "malformed openai response")
	}
	return nil
}

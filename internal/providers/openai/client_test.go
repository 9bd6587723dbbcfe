package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"prodgen/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	c, err := NewClient(Options{
		APIKey:     "test-key",
		BaseURL:    "https://api.test.invalid",
		HTTPClient: &http.Client{Transport: rt},
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()
	if _, err := NewClient(Options{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGenerateTextSendsConfiguredPayload(t *testing.T) {
	t.Parallel()
	var captured chatRequest
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		return jsonResponse(200, `{"choices":[{"message":{"content":"  hello world\n"}}]}`), nil
	})

	text, err := client.GenerateText(context.Background(), "You are a copywriter.", "Write about mugs.")
	if err != nil {
		t.Fatalf("GenerateText returned error: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("text = %q", text)
	}
	if captured.Model != defaultModel {
		t.Fatalf("model = %q, want %q", captured.Model, defaultModel)
	}
	if captured.MaxTokens != defaultMaxTokens {
		t.Fatalf("max_tokens = %d, want %d", captured.MaxTokens, defaultMaxTokens)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Fatalf("messages = %#v", captured.Messages)
	}
}

func TestGenerateTextWithParamsOverrides(t *testing.T) {
	t.Parallel()
	var captured chatRequest
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		return jsonResponse(200, `{"choices":[{"message":{"content":"ok"}}]}`), nil
	})

	temp := 0.2
	_, err := client.GenerateTextWithParams(context.Background(), "", "Write about mugs.", Params{
		Model:       "gpt-4",
		MaxTokens:   256,
		Temperature: &temp,
	})
	if err != nil {
		t.Fatalf("GenerateTextWithParams returned error: %v", err)
	}
	if captured.Model != "gpt-4" || captured.MaxTokens != 256 || captured.Temperature != 0.2 {
		t.Fatalf("captured = %+v", captured)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Fatalf("messages = %#v", captured.Messages)
	}
}

func TestGenerateTextUpstreamStatusError(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(429, `{"error":{"message":"rate limited","type":"rate_limit"}}`), nil
	})

	_, err := client.GenerateText(context.Background(), "", "prompt")
	e, ok := domain.AsError(err)
	if !ok || e.Kind != domain.KindUpstream {
		t.Fatalf("error = %v, want upstream", err)
	}
	if e.Status != 429 {
		t.Fatalf("Status = %d, want 429", e.Status)
	}
	if !e.Retryable() {
		t.Fatal("429 should be retryable")
	}
	if !strings.Contains(e.Message, "rate limited") {
		t.Fatalf("Message = %q, want upstream detail", e.Message)
	}
}

func TestGenerateTextNetworkError(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := client.GenerateText(context.Background(), "", "prompt")
	e, ok := domain.AsError(err)
	if !ok || e.Kind != domain.KindUpstream || e.Status != 0 {
		t.Fatalf("error = %v, want status-0 upstream", err)
	}
	if !e.Retryable() {
		t.Fatal("network errors should be retryable")
	}
}

func TestGenerateTextEmptyChoices(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"choices":[]}`), nil
	})

	_, err := client.GenerateText(context.Background(), "", "prompt")
	if domain.KindOf(err) != domain.KindUpstream {
		t.Fatalf("KindOf = %q, want upstream", domain.KindOf(err))
	}
}

func TestGenerateTextRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})
	_, err := client.GenerateText(context.Background(), "", "   ")
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("KindOf = %q, want validation", domain.KindOf(err))
	}
}

func TestGenerateImage(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/images/generations" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		var req imageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.N != 1 || req.Size != "1024x1024" {
			t.Fatalf("request = %#v", req)
		}
		return jsonResponse(200, `{"data":[{"url":"https://img.example.com/1.png"}]}`), nil
	})

	url, err := client.GenerateImage(context.Background(), "a mug on a white background")
	if err != nil {
		t.Fatalf("GenerateImage returned error: %v", err)
	}
	if url != "https://img.example.com/1.png" {
		t.Fatalf("url = %q", url)
	}
}

func TestGenerateImageNoData(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"data":[]}`), nil
	})
	_, err := client.GenerateImage(context.Background(), "prompt")
	if domain.KindOf(err) != domain.KindUpstream {
		t.Fatalf("KindOf = %q, want upstream", domain.KindOf(err))
	}
}

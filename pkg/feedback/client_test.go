package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientComplete_SendsFixedParameters(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Dear X,\n\nGood work."}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "test-key", Model: "llama-3.3-70b-versatile"})

	got, err := client.Complete(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Dear X,\n\nGood work." {
		t.Fatalf("unexpected completion %q", got)
	}

	if captured.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected model %q", captured.Model)
	}
	if captured.Temperature != 0.7 {
		t.Fatalf("unexpected temperature %v", captured.Temperature)
	}
	if captured.MaxTokens != 2048 {
		t.Fatalf("unexpected max tokens %d", captured.MaxTokens)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Content != "prompt text" {
		t.Fatalf("unexpected messages %+v", captured.Messages)
	}
}

func TestClientComplete_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "Invalid API Key", "code": "invalid_api_key"},
		})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "bad-key"})

	_, err := client.Complete(context.Background(), "prompt")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientComplete_InvalidKeyCodeWithoutStatus401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "Invalid API Key", "code": "invalid_api_key"},
		})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	_, err := client.Complete(context.Background(), "prompt")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for invalid_api_key code, got %v", err)
	}
}

func TestClientComplete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "overloaded"},
		})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatalf("expected error for 500 response")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Fatalf("server error must not be classified as unauthorized: %v", err)
	}
}

func TestClientComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jarvis-assistant/pkg/gemini"
)

func TestNew(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Errorf("New() error = %v, want ErrMissingAPIKey", err)
	}

	c, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q, want %q", c.Model(), gemini.DefaultModel)
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be brief" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked " },
							{ "text": "response string" }
						],
						"role": "model"
					}
				}
			],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test"})
	if err != nil {
		t.Fatal(err)
	}
	client.SetAPIURL(ts.URL + "/")

	request := func(text string) gemini.GenerateRequest {
		return gemini.GenerateRequest{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}},
			Contents: []gemini.Content{
				{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: text}}},
			},
		}
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), request("Hello world"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, err := resp.Text()
		if err != nil {
			t.Fatalf("Text() error: %v", err)
		}
		if text != "mocked response string" {
			t.Errorf("unexpected content response: %s", text)
		}
		if resp.UsageMetadata == nil || resp.UsageMetadata.TotalTokenCount != 10 {
			t.Errorf("unexpected usage: %+v", resp.UsageMetadata)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), request("cause_500")); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})
}

func TestGenerateResponse_TextNoCandidates(t *testing.T) {
	var resp gemini.GenerateResponse
	if _, err := resp.Text(); !errors.Is(err, gemini.ErrNoCandidates) {
		t.Errorf("Text() error = %v, want ErrNoCandidates", err)
	}
}

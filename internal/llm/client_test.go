package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateExamples_NoAPIKey(t *testing.T) {
	c := NewClient("", "gpt-4o-mini", "", time.Second)
	assert.False(t, c.Available())

	examples, err := c.GenerateExamples(context.Background(), "кошка", 3)
	require.NoError(t, err)
	assert.Nil(t, examples)
}

func TestGenerateExamples_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, `со словом "кошка"`)

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{
					"content": "1. Кошка спит на диване.\n\n2. У кошки острые когти.\n",
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL, time.Second)
	examples, err := c.GenerateExamples(context.Background(), "кошка", 3)
	require.NoError(t, err)
	// пустые строки между предложениями отбрасываются
	assert.Equal(t, []string{"1. Кошка спит на диване.", "2. У кошки острые когти."}, examples)
}

func TestGenerateExamples_RetriesOnServerError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "1. Стол стоит у окна."}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL, time.Second)
	examples, err := c.GenerateExamples(context.Background(), "стол", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"1. Стол стоит у окна."}, examples)
}

func TestGenerateExamples_ClientErrorNotRetried(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid key","type":"auth"}}`))
	}))
	defer srv.Close()

	c := NewClient("bad-key", "gpt-4o-mini", srv.URL, time.Second)
	_, err := c.GenerateExamples(context.Background(), "стол", 1)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, strings.Contains(err.Error(), "401"))
}

func TestGenerateExamples_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[],"error":{"message":"model overloaded","type":"server"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL, time.Second)
	_, err := c.GenerateExamples(context.Background(), "стол", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestGenerateExamples_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "gpt-4o-mini", srv.URL, time.Second)
	_, err := c.GenerateExamples(context.Background(), "стол", 1)
	require.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("k", "m", "", 0)
	assert.Equal(t, "https://api.openai.com/v1", c.baseURL)
	assert.Equal(t, 30*time.Second, c.client.Timeout)

	c2 := NewClient("k", "m", "http://localhost:8080/v1/", time.Second)
	assert.Equal(t, "http://localhost:8080/v1", c2.baseURL)
}

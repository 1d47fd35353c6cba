package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_Success(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(generateResponse{Response: "  Hallo wereld \n"})
	}))
	defer srv.Close()

	client := New(srv.URL, "tinyllama")

	translation, err := client.Translate(context.Background(), "Dutch (The Netherlands)", "Hello world")
	require.NoError(t, err)
	assert.Equal(t, "Hallo wereld", translation)

	assert.Equal(t, "tinyllama", got.Model)
	assert.False(t, got.Stream)
	assert.Equal(t, 0.1, got.Options.Temperature)
	assert.Contains(t, got.Prompt, "Dutch (The Netherlands)")
	assert.Contains(t, got.Prompt, `"Hello world"`)
}

func TestTranslate_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(srv.URL, "tinyllama")

	_, err := client.Translate(context.Background(), "Bulgarian", "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama error")
}

func TestTranslate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := New(srv.URL, "tinyllama")

	_, err := client.Translate(context.Background(), "Bulgarian", "Hello")
	assert.Error(t, err)
}

func TestNew_SchemelessHost(t *testing.T) {
	client := New("10.0.0.5:11434", "tinyllama")
	assert.True(t, strings.HasPrefix(client.baseURL, "http://"))

	client = New("https://ollama.internal/", "tinyllama")
	assert.Equal(t, "https://ollama.internal", client.baseURL)
}

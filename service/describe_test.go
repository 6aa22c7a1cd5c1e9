package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menucatalog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{AI: config.AIConfig{
		Enabled: true,
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: time.Second,
	}}
}

func TestDescriber_Describe(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  A fragrant fried rice.  "}}]}`))
	}))
	defer srv.Close()

	d := NewDescriber(testConfig(srv.URL))
	text, err := d.Describe(context.Background(), "Nasi Goreng", "Main Course", []string{"rice", "egg"})
	require.NoError(t, err)

	assert.Equal(t, "A fragrant fried rice.", text)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "Describe food: Nasi Goreng (Main Course). Ingredients: rice,egg. One sentence.", gotBody.Messages[0].Content)
}

func TestDescriber_Disabled(t *testing.T) {
	d := NewDescriber(&config.Config{AI: config.AIConfig{Enabled: false}})
	_, err := d.Describe(context.Background(), "Es Teh", "Drink", nil)
	assert.Error(t, err)
}

func TestDescriber_NoAPIKey(t *testing.T) {
	d := NewDescriber(&config.Config{AI: config.AIConfig{Enabled: true, BaseURL: "http://localhost:1", Timeout: time.Second}})
	_, err := d.Describe(context.Background(), "Es Teh", "Drink", nil)
	assert.Error(t, err)
}

func TestDescriber_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	d := NewDescriber(testConfig(srv.URL))
	_, err := d.Describe(context.Background(), "Es Teh", "Drink", nil)
	assert.Error(t, err)
}

func TestDescriber_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	d := NewDescriber(testConfig(srv.URL))
	_, err := d.Describe(context.Background(), "Es Teh", "Drink", nil)
	assert.Error(t, err)
}

func TestDescriber_BlankContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`))
	}))
	defer srv.Close()

	d := NewDescriber(testConfig(srv.URL))
	_, err := d.Describe(context.Background(), "Es Teh", "Drink", nil)
	assert.Error(t, err)
}

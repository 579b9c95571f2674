package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tensorlabs/amaanat/internal/config"
)

func gatewayConfig(url string) config.GatewayConfig {
	return config.GatewayConfig{
		URL:     url,
		APIKey:  "test-key",
		Sender:  "AMAANAT",
		Timeout: 2 * time.Second,
	}
}

func TestGatewayClient_Send(t *testing.T) {
	var received gatewayRequest
	var apiKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		apiKey = r.Header.Get("X-API-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewGatewayClient(gatewayConfig(server.URL))
	err := client.Send(context.Background(), "9999999999", "URGENT: pay today")

	assert.NoError(t, err)
	assert.Equal(t, "test-key", apiKey)
	assert.Equal(t, "AMAANAT", received.From)
	assert.Equal(t, "9999999999", received.To)
	assert.Equal(t, "URGENT: pay today", received.Message)
}

func TestGatewayClient_Send_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewGatewayClient(gatewayConfig(server.URL))
	err := client.Send(context.Background(), "9999999999", "body")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGatewayClient_Send_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse everything

	client := NewGatewayClient(gatewayConfig(server.URL))
	err := client.Send(context.Background(), "9999999999", "body")

	assert.Error(t, err)
}

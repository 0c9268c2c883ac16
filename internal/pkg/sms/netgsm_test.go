package sms

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"formatted domestic number", "0532 123 45 67", "905321234567"},
		{"bare domestic number", "05321234567", "905321234567"},
		{"already international", "905321234567", "905321234567"},
		{"plus country code", "+90 532 123 45 67", "905321234567"},
		{"no leading zero", "5321234567", "905321234567"},
		{"punctuation stripped", "(0532) 123-45-67", "905321234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanPhoneNumber(tt.input))
		})
	}
}

func TestGatewaySendBuildsEnvelope(t *testing.T) {
	var captured string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured = string(body)
		assert.Equal(t, "text/xml", r.Header.Get("Content-Type"))
		w.Write([]byte("<return>00 12345</return>"))
	}))
	defer server.Close()

	gateway := NewGateway(GatewayConfig{
		Endpoint: server.URL,
		Username: "user",
		Password: "pass",
		Header:   "BEARTSHARE",
	}, zerolog.Nop())

	result, err := gateway.Send(context.Background(), "Duyuru", []string{"905321234567", "905559876543"})
	require.NoError(t, err)
	assert.Contains(t, result, "<return>00 12345</return>")

	assert.Contains(t, captured, "<username>user</username>")
	assert.Contains(t, captured, "<header>BEARTSHARE</header>")
	assert.Contains(t, captured, "<msg>Duyuru</msg>")
	// Both numbers ride in one call as repeated gsm elements
	assert.Contains(t, captured, "<gsm>905321234567</gsm><gsm>905559876543</gsm>")
	assert.Contains(t, captured, "smsGonder1NV2")
}

func TestGatewaySendTransportError(t *testing.T) {
	gateway := NewGateway(GatewayConfig{
		Endpoint: "http://127.0.0.1:0",
		Username: "user",
		Password: "pass",
		Header:   "BEARTSHARE",
	}, zerolog.Nop())

	_, err := gateway.Send(context.Background(), "Duyuru", []string{"905321234567"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "gateway call failed"))
}

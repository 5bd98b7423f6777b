package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	// Mock server setup
	mockResponse := map[string]string{"message": "success"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-endpoint" {
			t.Errorf("Expected endpoint '/test-endpoint', got '%s'", r.URL.Path)
		}
		if r.Header.Get("X-Goog-Api-Key") != "test-key" {
			t.Errorf("Expected api key header, got '%s'", r.Header.Get("X-Goog-Api-Key"))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	// Act
	err := client.Request("GET", "/test-endpoint", map[string]string{"X-Goog-Api-Key": "test-key"}, nil, &response)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response["message"] != "success" {
		t.Errorf("Expected response message to be 'success', got '%s'", response["message"])
	}
}

func TestHTTPClient_Request_UpstreamErrorWithMessage(t *testing.T) {
	// Mock server setup: the Google error envelope
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"message": "API key not valid", "status": "PERMISSION_DENIED"}}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)

	// Act
	err := client.Request("POST", "/test-endpoint", nil, map[string]string{"key": "value"}, nil)

	// Assert
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected *UpstreamError, got %T", err)
	}
	if upstream.StatusCode != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", upstream.StatusCode)
	}
	if upstream.Message != "API key not valid" {
		t.Errorf("Expected upstream message surfaced, got '%s'", upstream.Message)
	}
}

func TestHTTPClient_Request_UpstreamErrorWithoutBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)

	err := client.Request("GET", "/test-endpoint", nil, nil, nil)

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected *UpstreamError, got %T", err)
	}
	if upstream.Message != "" {
		t.Errorf("Expected empty message, got '%s'", upstream.Message)
	}
	if upstream.StatusCode != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", upstream.StatusCode)
	}
}

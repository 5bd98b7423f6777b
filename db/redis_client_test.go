package db

import (
	"context"
	"testing"
)

func TestMockRedisClient_SetGet(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	if err := client.Set("mykey", "myvalue"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	val, err := client.Get("mykey")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if val != "myvalue" {
		t.Errorf("Expected 'myvalue', got %s", val)
	}

	if _, err := client.Get("missing"); err == nil {
		t.Error("Expected an error for a missing key")
	}
}

func TestMockRedisClient_Del(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	_ = client.Set("mykey", "myvalue")
	if err := client.Del("mykey"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := client.Get("mykey"); err == nil {
		t.Error("Expected key to be gone after Del")
	}
}

func TestMockRedisClient_GeoRadius(t *testing.T) {
	client := NewMockRedisClient(context.Background())
	ctx := context.Background()

	inside := map[string]interface{}{"name": "inside"}
	outside := map[string]interface{}{"name": "outside"}

	if err := client.AddLocationWithJSON(ctx, "geo_key", "member_inside", 37.7512, -122.4181, inside); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := client.AddLocationWithJSON(ctx, "geo_key", "member_outside", 37.8044, -122.2712, outside); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	results, err := client.GetLocationsWithinRadius("geo_key", 37.751, -122.418, 1000)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 member within 1km, got %d", len(results))
	}

	// Unknown geo key yields no results, not an error.
	results, err = client.GetLocationsWithinRadius("unknown_key", 0, 0, 1000)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results for unknown key, got %d", len(results))
	}
}

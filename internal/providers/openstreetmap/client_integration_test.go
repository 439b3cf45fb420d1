//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestClient_Search_Integration(t *testing.T) {
	client := NewClient(10 * time.Second)

	t.Logf("Making API call to OpenStreetMap Nominatim API...")

	resp, err := client.Search(context.Background(), "Seattle", "WA")
	if err != nil {
		t.Fatalf("Failed to search location: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Lat == "" || resp.Lon == "" {
		t.Errorf("Expected non-empty coordinates, got lat=%q lon=%q", resp.Lat, resp.Lon)
	}
	if resp.DisplayName == "" {
		t.Error("Expected non-empty display name")
	}
}

//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

type statusResponse struct {
	State    string  `json:"state"`
	LoggedIn bool    `json:"logged_in"`
	UserID   *string `json:"user_id"`
}

type campaignResponse struct {
	ID     string            `json:"id"`
	Status string            `json:"status"`
	Drops  []json.RawMessage `json:"drops"`
}

func TestStatus(t *testing.T) {
	resp, body := makeRequest(t, "/api/status")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var status statusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if status.State == "" {
		t.Error("Expected a state, got empty string")
	}
	if !status.LoggedIn && status.UserID != nil {
		t.Errorf("user_id must be null while logged out, got %q", *status.UserID)
	}
}

func TestInventory(t *testing.T) {
	resp, body := makeRequest(t, "/api/inventory")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(body)), "[") {
		t.Fatalf("Expected a JSON array, got %s", body)
	}

	var campaigns []campaignResponse
	if err := json.Unmarshal(body, &campaigns); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	for _, c := range campaigns {
		switch c.Status {
		case "Active", "Upcoming", "Expired":
		default:
			t.Errorf("Campaign %s has unexpected status %q", c.ID, c.Status)
		}
		if c.Drops == nil {
			t.Errorf("Campaign %s has null drops", c.ID)
		}
	}
}

func TestDashboard(t *testing.T) {
	resp, body := makeRequest(t, "/")

	switch resp.StatusCode {
	case http.StatusOK:
		if !strings.Contains(string(body), "<html") {
			t.Error("Expected an HTML page")
		}
	case http.StatusNotFound:
		if string(body) != "Web Interface Error: index.html not found" {
			t.Errorf("Unexpected 404 body %q", body)
		}
	default:
		t.Errorf("Unexpected status %d", resp.StatusCode)
	}
}

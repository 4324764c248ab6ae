//go:build staging

package staging

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var (
	stagingURL string
	client     *http.Client
)

func TestMain(m *testing.M) {
	// Get the dashboard URL from environment or default to localhost
	stagingURL = os.Getenv("API_URL")
	if stagingURL == "" {
		stagingURL = "http://localhost:5801"
	}

	client = &http.Client{
		Timeout: 10 * time.Second,
	}

	os.Exit(m.Run())
}

// makeRequest issues a GET against the running server and returns the body
func makeRequest(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	url := fmt.Sprintf("%s%s", stagingURL, path)
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("Failed to make request to %s: %v", url, err)
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp, respBody
}

package ipinfo

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/Staillim/YourSubLink-sub000/internal/config"
)

// Client looks up the visitor's public IP from an external service. The
// lookup is best effort: callers treat any failure as "IP unknown" and the
// monetization guard fails open.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a new IP lookup client
func NewClient(cfg *config.IPLookupConfig) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

// Lookup fetches the public IP. The request is bounded by the client
// timeout and the caller's context.
func (c *Client) Lookup(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build IP lookup request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("IP lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("IP lookup returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return "", fmt.Errorf("failed to read IP lookup response: %w", err)
	}

	ip := strings.TrimSpace(string(body))
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("IP lookup returned invalid address %q", ip)
	}

	return ip, nil
}

package travel

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// CreateSession runs the create-session handshake used by the live-pricing
// endpoints: it issues the creation request and extracts the session id from
// the Location response header.
//
// The provider signals "still provisioning" with an empty or absent Location
// header, in which case the creation request is re-issued after
// Config.PollDelay. The loop is bounded by Config.SessionAttempts; on
// exhaustion ErrSessionTimeout is returned. Transport failures abort the
// loop immediately.
func (c *Client) CreateSession(ctx context.Context, method, rawURL string, params url.Values) (string, error) {
	for attempt := 0; attempt < c.cfg.SessionAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.cfg.PollDelay):
			}
		}

		resp, err := c.Do(ctx, method, rawURL, params)
		if err != nil {
			return "", err
		}
		if loc := resp.Header.Get("Location"); loc != "" {
			id := sessionID(loc)
			c.logger.Debug("session created", "id", id, "attempts", attempt+1)
			return id, nil
		}
		c.logger.Debug("session not ready", "status", resp.Status, "attempt", attempt+1)
	}
	return "", fmt.Errorf("%w after %d attempts", ErrSessionTimeout, c.cfg.SessionAttempts)
}

// sessionID extracts the session identifier from a Location header value:
// the trailing path segment, with any query suffix stripped first.
func sessionID(location string) string {
	if i := strings.IndexByte(location, '?'); i >= 0 {
		location = location[:i]
	}
	location = strings.TrimSuffix(location, "/")
	if i := strings.LastIndexByte(location, '/'); i >= 0 {
		return location[i+1:]
	}
	return location
}

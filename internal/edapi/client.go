// Package edapi fetches coordinates, hotspots and buyer listings from the
// EDSM and EDTools public APIs, with per-operation TTL caching and
// retry-with-backoff around every raw request.
package edapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"elite-miner/internal/cache"
)

const (
	edsmBaseURL    = "https://www.edsm.net"
	edtoolsBaseURL = "https://edtools.cc"

	// Systems do not move, prices and demand do.
	coordTTL   = 10 * time.Minute
	hotspotTTL = 5 * time.Minute
	buyerTTL   = 2 * time.Minute

	// Upstream buyer records sometimes omit ago_sec; treat them as ancient.
	unknownAgoSec = 999_999.0
)

// ErrSystemNotFound marks a well-formed EDSM response with no coordinate
// payload for the requested name. Not retried: the system does not exist.
var ErrSystemNotFound = errors.New("system not found")

// ErrNoBuyerData marks an empty or unparseable buyer listing.
var ErrNoBuyerData = errors.New("no buyer data")

// Client is an HTTP client for the EDSM and EDTools APIs. Each operation
// owns an independent TTL cache keyed by its argument; the caches are
// safe for the optimizer's parallel commodity scans.
type Client struct {
	http        *http.Client
	edsmBase    string
	edtoolsBase string

	maxAttempts int
	baseDelay   time.Duration

	coordCache   *cache.TTL[string, Coordinate]
	hotspotCache *cache.TTL[string, []Hotspot]
	buyerCache   *cache.TTL[int, []Buyer]
}

// NewClient creates a client with production endpoints and retry policy.
func NewClient() *Client {
	return &Client{
		http:         &http.Client{Timeout: 10 * time.Second},
		edsmBase:     edsmBaseURL,
		edtoolsBase:  edtoolsBaseURL,
		maxAttempts:  3,
		baseDelay:    time.Second,
		coordCache:   cache.New[string, Coordinate](coordTTL),
		hotspotCache: cache.New[string, []Hotspot](hotspotTTL),
		buyerCache:   cache.New[int, []Buyer](buyerTTL),
	}
}

// getJSON fetches a URL and decodes JSON into dst. Non-200 responses and
// decode failures are transport errors, eligible for retry.
func (c *Client) getJSON(url string, dst interface{}) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (EliteMinerAutoCalc/3.0)")
	req.Header.Set("Referer", "https://edtools.cc/miner/")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

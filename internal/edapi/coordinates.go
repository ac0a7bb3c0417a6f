package edapi

import (
	"encoding/json"
	"fmt"
	"net/url"

	"elite-miner/internal/retry"
)

// edsmSystem mirrors the EDSM system lookup response.
type edsmSystem struct {
	Name   string      `json:"name"`
	Coords *Coordinate `json:"coords"`
}

// ResolveCoordinates looks up a system's galactic coordinates on EDSM.
// Transport failures are retried; a response that simply lacks the system
// yields ErrSystemNotFound immediately.
func (c *Client) ResolveCoordinates(systemName string) (Coordinate, error) {
	return c.coordCache.Do(systemName, func() (Coordinate, error) {
		reqURL := fmt.Sprintf("%s/api-v1/system?coords=1&sysname=%s",
			c.edsmBase, url.QueryEscape(systemName))

		systems, err := retry.Do(func() ([]edsmSystem, error) {
			var raw json.RawMessage
			if err := c.getJSON(reqURL, &raw); err != nil {
				return nil, err
			}
			return parseEDSMSystems(raw)
		}, c.maxAttempts, c.baseDelay)
		if err != nil {
			return Coordinate{}, err
		}

		for _, s := range systems {
			if s.Coords != nil {
				return *s.Coords, nil
			}
		}
		return Coordinate{}, fmt.Errorf("%w: %s", ErrSystemNotFound, systemName)
	})
}

// parseEDSMSystems handles both response shapes EDSM produces: a single
// system object, or an array of candidates.
func parseEDSMSystems(raw json.RawMessage) ([]edsmSystem, error) {
	var list []edsmSystem
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var one edsmSystem
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("unexpected EDSM payload: %w", err)
	}
	return []edsmSystem{one}, nil
}

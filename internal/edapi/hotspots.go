package edapi

import (
	"fmt"
	"net/url"

	"elite-miner/internal/retry"
)

// ListHotspots fetches the mining hotspots for a commodity from EDTools.
// An empty listing is not an error: the caller skips the commodity.
func (c *Client) ListHotspots(commodity string) ([]Hotspot, error) {
	return c.hotspotCache.Do(commodity, func() ([]Hotspot, error) {
		reqURL := fmt.Sprintf("%s/miner?a=r&n=%s", c.edtoolsBase, url.QueryEscape(commodity))

		spots, err := retry.Do(func() ([]Hotspot, error) {
			var spots []Hotspot
			if err := c.getJSON(reqURL, &spots); err != nil {
				return nil, err
			}
			return spots, nil
		}, c.maxAttempts, c.baseDelay)
		if err != nil {
			return nil, err
		}
		if spots == nil {
			spots = []Hotspot{}
		}
		return spots, nil
	})
}

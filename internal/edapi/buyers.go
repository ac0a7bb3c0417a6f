package edapi

import (
	"fmt"

	"elite-miner/internal/retry"
)

// ListBuyers fetches the buyer listing for a commodity ID from EDTools.
// An empty listing is surfaced as ErrNoBuyerData: a commodity nobody
// quotes cannot be ranked, and the caller reports it rather than retries.
func (c *Client) ListBuyers(cid int) ([]Buyer, error) {
	return c.buyerCache.Do(cid, func() ([]Buyer, error) {
		reqURL := fmt.Sprintf("%s/miner?a=p&cid=%d", c.edtoolsBase, cid)

		buyers, err := retry.Do(func() ([]Buyer, error) {
			var buyers []Buyer
			if err := c.getJSON(reqURL, &buyers); err != nil {
				return nil, err
			}
			return buyers, nil
		}, c.maxAttempts, c.baseDelay)
		if err != nil {
			return nil, err
		}
		if len(buyers) == 0 {
			return nil, fmt.Errorf("%w: cid %d", ErrNoBuyerData, cid)
		}

		for i := range buyers {
			ago := unknownAgoSec
			if buyers[i].AgoSec != nil {
				ago = *buyers[i].AgoSec
			}
			buyers[i].AgeMinutes = ago / 60
		}
		return buyers, nil
	})
}

package engine

import "elite-miner/internal/config"

// Freshness classifies how old a buyer's quoted data is.
type Freshness string

const (
	FreshnessFresh Freshness = "FRESH" // under an hour
	FreshnessStale Freshness = "STALE" // under six hours
	FreshnessOld   Freshness = "OLD"
)

// ClassifyFreshness buckets a buyer data age in minutes.
func ClassifyFreshness(ageMinutes float64) Freshness {
	switch {
	case ageMinutes < 60:
		return FreshnessFresh
	case ageMinutes < 360:
		return FreshnessStale
	default:
		return FreshnessOld
	}
}

// RouteResult is one evaluated mining route: fill the hold at MineSystem,
// sell the load at SellStation. Constructed once by the evaluator and
// never mutated afterwards; numeric fields are rounded for display.
type RouteResult struct {
	Commodity   string
	MineSystem  string
	SellSystem  string
	SellStation string
	Pad         string

	Price  float64 // Cr per ton
	Demand float64

	DistToMineLY    float64
	DistToSellLY    float64
	TotalDistanceLY float64

	ExtractionTimeMin float64 // pure laser+collection throughput
	RealisticTimeMin  float64 // extraction time inflated by gameplay overhead
	TravelTimeMin     float64

	ExtractionRateTPM float64 // boosted tons/min
	RealisticRateTPM  float64

	BulkTaxFactor float64
	Profit        float64
	CrPerHour     float64

	Freshness  Freshness
	Mode       config.MiningMode
	Multiplier float64
}

// SearchParams are the inputs of one optimizer run.
type SearchParams struct {
	SystemName string
	Mode       config.MiningMode
	MaxResults int // 0 = config default
}

package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"elite-miner/internal/config"
	"elite-miner/internal/edapi"
	"elite-miner/internal/logger"
)

// ErrNoRoutes reports a run that produced no rankable routes at all.
var ErrNoRoutes = errors.New("no valid routes found")

// CoordinateResolver resolves a system name to galactic coordinates.
type CoordinateResolver interface {
	ResolveCoordinates(systemName string) (edapi.Coordinate, error)
}

// HotspotLister lists mining hotspots for a commodity name.
type HotspotLister interface {
	ListHotspots(commodity string) ([]edapi.Hotspot, error)
}

// BuyerLister lists buyers for a commodity ID.
type BuyerLister interface {
	ListBuyers(cid int) ([]edapi.Buyer, error)
}

// DataSource is everything the optimizer needs from upstream.
// *edapi.Client satisfies it.
type DataSource interface {
	CoordinateResolver
	HotspotLister
	BuyerLister
}

// Optimizer ranks laser mining routes across the configured commodities.
type Optimizer struct {
	source DataSource
	cfg    *config.Config
}

// NewOptimizer creates an Optimizer over the given data source and config.
func NewOptimizer(source DataSource, cfg *config.Config) *Optimizer {
	return &Optimizer{source: source, cfg: cfg}
}

// Run resolves the reference system, scans every configured commodity and
// returns the top routes by Cr/h. A failure for one commodity is logged
// and skipped; only a failed reference resolution aborts the run. An empty
// result set is ErrNoRoutes, never a silent empty slice.
func (o *Optimizer) Run(params SearchParams, progress func(string)) ([]RouteResult, error) {
	if progress == nil {
		progress = func(string) {}
	}

	progress(fmt.Sprintf("Locating %s...", params.SystemName))
	ref, err := o.source.ResolveCoordinates(params.SystemName)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", params.SystemName, err)
	}

	progress(fmt.Sprintf("Scanning %d commodities...", len(o.cfg.Commodities)))

	// Commodity scans are independent; the edapi caches are thread-safe,
	// so fan out and collect under a mutex.
	var (
		mu  sync.Mutex
		all []RouteResult
		wg  sync.WaitGroup
	)
	for _, com := range o.cfg.Commodities {
		wg.Add(1)
		go func(com config.Commodity) {
			defer wg.Done()
			routes, err := o.scanCommodity(ref, com, params.Mode)
			if err != nil {
				logger.Error("Scan", fmt.Sprintf("%s: %v", com.Name, err))
				return
			}
			if len(routes) == 0 {
				return
			}
			mu.Lock()
			all = append(all, routes...)
			mu.Unlock()
		}(com)
	}
	wg.Wait()

	if len(all) == 0 {
		return nil, ErrNoRoutes
	}

	// Deterministic order regardless of which scan finished first.
	sort.Slice(all, func(i, j int) bool {
		if all[i].CrPerHour != all[j].CrPerHour {
			return all[i].CrPerHour > all[j].CrPerHour
		}
		if all[i].Commodity != all[j].Commodity {
			return all[i].Commodity < all[j].Commodity
		}
		return all[i].MineSystem < all[j].MineSystem
	})

	limit := params.MaxResults
	if limit <= 0 {
		limit = o.cfg.TopRoutes
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// scanCommodity evaluates the hotspot x buyer cross-product for one
// commodity. Empty hotspot or buyer data is a skip, not an error.
func (o *Optimizer) scanCommodity(ref edapi.Coordinate, com config.Commodity, mode config.MiningMode) ([]RouteResult, error) {
	hotspots, err := o.source.ListHotspots(com.Name)
	if err != nil {
		return nil, fmt.Errorf("hotspots: %w", err)
	}
	if len(hotspots) == 0 {
		logger.Warn("Scan", fmt.Sprintf("%s: no hotspots found", com.Name))
		return nil, nil
	}

	buyers, err := o.source.ListBuyers(com.CID)
	if err != nil {
		return nil, fmt.Errorf("buyers: %w", err)
	}
	buyers = filterBuyers(buyers, o.cfg.MaxAgeMinutes, o.cfg.MinPrice)
	if len(buyers) == 0 {
		logger.Warn("Scan", fmt.Sprintf("%s: no valid buyer data", com.Name))
		return nil, nil
	}

	var routes []RouteResult
	for _, spot := range hotspots {
		for _, buyer := range buyers {
			r := EvaluateRoute(ref, spot, buyer, o.cfg.Game, o.cfg.Ship, mode)
			if r == nil {
				continue
			}
			r.Commodity = com.Name
			routes = append(routes, *r)
		}
	}
	logger.Success("Scan", fmt.Sprintf("%s: %d hotspots x %d buyers", com.Name, len(hotspots), len(buyers)))
	return routes, nil
}

// filterBuyers drops quotes that are too old or priced below the floor.
func filterBuyers(buyers []edapi.Buyer, maxAgeMinutes, minPrice float64) []edapi.Buyer {
	var out []edapi.Buyer
	for _, b := range buyers {
		if b.AgeMinutes <= maxAgeMinutes && b.Price >= minPrice {
			out = append(out, b)
		}
	}
	return out
}

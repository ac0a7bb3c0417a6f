package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"elite-miner/internal/config"
	"elite-miner/internal/edapi"
)

// fakeSource is an in-memory DataSource for optimizer tests.
type fakeSource struct {
	coords      map[string]edapi.Coordinate
	hotspots    map[string][]edapi.Hotspot
	buyers      map[int][]edapi.Buyer
	hotspotErrs map[string]error
	buyerErrs   map[int]error

	hotspotCalls atomic.Int32
}

func (f *fakeSource) ResolveCoordinates(name string) (edapi.Coordinate, error) {
	c, ok := f.coords[name]
	if !ok {
		return edapi.Coordinate{}, fmt.Errorf("%w: %s", edapi.ErrSystemNotFound, name)
	}
	return c, nil
}

func (f *fakeSource) ListHotspots(commodity string) ([]edapi.Hotspot, error) {
	f.hotspotCalls.Add(1)
	if err := f.hotspotErrs[commodity]; err != nil {
		return nil, err
	}
	return f.hotspots[commodity], nil
}

func (f *fakeSource) ListBuyers(cid int) ([]edapi.Buyer, error) {
	if err := f.buyerErrs[cid]; err != nil {
		return nil, err
	}
	return f.buyers[cid], nil
}

// testSetup returns a config with two commodities and a source with fresh,
// well-priced buyers for both.
func testSetup() (*config.Config, *fakeSource) {
	cfg := config.Default()
	cfg.Commodities = []config.Commodity{
		{Name: "Painite", CID: 83},
		{Name: "Platinum", CID: 46},
	}

	src := &fakeSource{
		coords: map[string]edapi.Coordinate{"Sol": {}},
		hotspots: map[string][]edapi.Hotspot{
			"Painite":  {{Name: "Hyades Sector", Coords: coordPtr(10, 0, 0)}},
			"Platinum": {{Name: "Borann", Coords: coordPtr(15, 0, 0)}},
		},
		buyers: map[int][]edapi.Buyer{
			83: {{System: "HIP 1", Station: "Docks", Coords: coordPtr(12, 0, 0), Price: 500_000, Demand: 1000, AgeMinutes: 30}},
			46: {{System: "HIP 2", Station: "Port", Coords: coordPtr(18, 0, 0), Price: 250_000, Demand: 1000, AgeMinutes: 30}},
		},
		hotspotErrs: map[string]error{},
		buyerErrs:   map[int]error{},
	}
	return cfg, src
}

func TestRun_SortsByYieldAndTruncates(t *testing.T) {
	cfg, src := testSetup()
	// Inflate the painite buyer list so the cross-product exceeds top-K.
	var buyers []edapi.Buyer
	for i := 0; i < 10; i++ {
		buyers = append(buyers, edapi.Buyer{
			System:     fmt.Sprintf("HIP %d", i),
			Station:    "Docks",
			Coords:     coordPtr(float64(i), 0, 0),
			Price:      300_000 + float64(i)*10_000,
			Demand:     5000,
			AgeMinutes: 30,
		})
	}
	src.buyers[83] = buyers

	opt := NewOptimizer(src, cfg)
	routes, err := opt.Run(SearchParams{SystemName: "Sol", Mode: config.ModeUnmapped}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(routes) > 5 {
		t.Fatalf("len(routes) = %d, want <= 5", len(routes))
	}
	for i := 1; i < len(routes); i++ {
		if routes[i].CrPerHour > routes[i-1].CrPerHour {
			t.Fatalf("routes not sorted desc at %d: %v > %v", i, routes[i].CrPerHour, routes[i-1].CrPerHour)
		}
	}
}

func TestRun_MaxResultsOverride(t *testing.T) {
	cfg, src := testSetup()
	opt := NewOptimizer(src, cfg)

	routes, err := opt.Run(SearchParams{SystemName: "Sol", Mode: config.ModeUnmapped, MaxResults: 1}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("len(routes) = %d, want 1", len(routes))
	}
}

func TestRun_EmptyHotspotsSkipsCommodityOnly(t *testing.T) {
	cfg, src := testSetup()
	src.hotspots["Painite"] = nil

	opt := NewOptimizer(src, cfg)
	routes, err := opt.Run(SearchParams{SystemName: "Sol", Mode: config.ModeUnmapped}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range routes {
		if r.Commodity == "Painite" {
			t.Errorf("commodity without hotspots produced route %+v", r)
		}
	}
	if len(routes) == 0 {
		t.Fatal("other commodities should still produce routes")
	}
	if src.hotspotCalls.Load() != 2 {
		t.Errorf("hotspot fetches = %d, want 2 (no abort)", src.hotspotCalls.Load())
	}
}

func TestRun_FetchErrorSkipsCommodityOnly(t *testing.T) {
	cfg, src := testSetup()
	src.buyerErrs[83] = errors.New("edtools is down")

	opt := NewOptimizer(src, cfg)
	routes, err := opt.Run(SearchParams{SystemName: "Sol", Mode: config.ModeUnmapped}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(routes) == 0 {
		t.Fatal("healthy commodity should survive a failing one")
	}
	for _, r := range routes {
		if r.Commodity != "Platinum" {
			t.Errorf("unexpected commodity %q in results", r.Commodity)
		}
	}
}

func TestRun_BuyerFilters(t *testing.T) {
	cfg, src := testSetup()
	src.buyers[83] = []edapi.Buyer{
		{System: "TooOld", Coords: coordPtr(1, 0, 0), Price: 900_000, Demand: 100, AgeMinutes: 721},
		{System: "TooCheap", Coords: coordPtr(1, 0, 0), Price: 99_999, Demand: 100, AgeMinutes: 10},
	}
	src.buyers[46] = nil // platinum contributes nothing either

	opt := NewOptimizer(src, cfg)
	_, err := opt.Run(SearchParams{SystemName: "Sol", Mode: config.ModeUnmapped}, nil)
	if !errors.Is(err, ErrNoRoutes) {
		t.Fatalf("err = %v, want ErrNoRoutes", err)
	}
}

func TestRun_IncompleteRecordsFiltered(t *testing.T) {
	cfg, src := testSetup()
	cfg.Commodities = cfg.Commodities[:1] // Painite only
	src.hotspots["Painite"] = []edapi.Hotspot{
		{Name: "NoCoords"},
		{Name: "Good", Coords: coordPtr(5, 0, 0)},
	}

	opt := NewOptimizer(src, cfg)
	routes, err := opt.Run(SearchParams{SystemName: "Sol", Mode: config.ModeUnmapped}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("len(routes) = %d, want 1 (incomplete hotspot skipped)", len(routes))
	}
	if routes[0].MineSystem != "Good" {
		t.Errorf("MineSystem = %q, want Good", routes[0].MineSystem)
	}
}

func TestRun_ReferenceResolutionIsFatal(t *testing.T) {
	cfg, src := testSetup()
	opt := NewOptimizer(src, cfg)

	_, err := opt.Run(SearchParams{SystemName: "Atlantis", Mode: config.ModeUnmapped}, nil)
	if !errors.Is(err, edapi.ErrSystemNotFound) {
		t.Fatalf("err = %v, want wrapped ErrSystemNotFound", err)
	}
	if src.hotspotCalls.Load() != 0 {
		t.Errorf("hotspot fetches = %d, want 0 after fatal resolution failure", src.hotspotCalls.Load())
	}
}

func TestRun_DeterministicTieBreak(t *testing.T) {
	cfg, src := testSetup()
	// Two commodities with identical geometry and pricing produce equal
	// yields; the ranking must still be stable.
	src.hotspots["Painite"] = []edapi.Hotspot{{Name: "SiteA", Coords: coordPtr(10, 0, 0)}}
	src.hotspots["Platinum"] = []edapi.Hotspot{{Name: "SiteA", Coords: coordPtr(10, 0, 0)}}
	same := []edapi.Buyer{{System: "HIP 1", Station: "Docks", Coords: coordPtr(10, 0, 0), Price: 400_000, Demand: 5000, AgeMinutes: 30}}
	src.buyers[83] = same
	src.buyers[46] = same

	opt := NewOptimizer(src, cfg)
	for i := 0; i < 5; i++ {
		routes, err := opt.Run(SearchParams{SystemName: "Sol", Mode: config.ModeUnmapped}, nil)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(routes) != 2 {
			t.Fatalf("len(routes) = %d, want 2", len(routes))
		}
		if routes[0].Commodity != "Painite" || routes[1].Commodity != "Platinum" {
			t.Fatalf("tie-break order = %q, %q; want Painite, Platinum", routes[0].Commodity, routes[1].Commodity)
		}
	}
}

func TestRun_ProgressCallback(t *testing.T) {
	cfg, src := testSetup()
	opt := NewOptimizer(src, cfg)

	var lines []string
	_, err := opt.Run(SearchParams{SystemName: "Sol", Mode: config.ModeUnmapped}, func(s string) {
		lines = append(lines, s)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(lines) < 2 {
		t.Fatalf("progress lines = %d, want >= 2", len(lines))
	}
}

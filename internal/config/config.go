package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MiningMode selects how much real-gameplay overhead to assume on top of
// pure extraction throughput.
type MiningMode string

const (
	ModeMapped   MiningMode = "mapped"   // following mining maps/guides
	ModeUnmapped MiningMode = "unmapped" // random prospecting in hotspots
	ModeBeginner MiningMode = "beginner" // still learning techniques
)

// ShipProfile describes the mining ship loadout. Immutable for the run.
type ShipProfile struct {
	Name                 string  `yaml:"name"`
	CargoTons            int     `yaml:"cargo_tons"`
	JumpRangeLY          float64 `yaml:"jump_range_ly"` // laden
	JumpTimeMin          float64 `yaml:"jump_time_min"`
	CollectorControllers int     `yaml:"collector_controllers"`
	NumLasers            int     `yaml:"num_lasers"`
	ShipValue            float64 `yaml:"ship_value"` // informational only
}

// GameConfig holds the tunable rate constants of the mining model.
type GameConfig struct {
	LimpetCost    float64 `yaml:"limpet_cost"`
	LimpetsPerTon float64 `yaml:"limpets_per_ton"`

	// Pure extraction efficiency.
	LaserRatePerLaser           float64 `yaml:"laser_rate_per_laser"`           // tons/min with a medium laser
	CollectionRatePerController float64 `yaml:"collection_rate_per_controller"` // tons/min per controller

	ProspectorBonus float64 `yaml:"prospector_bonus"` // A-rated prospector yield multiplier

	MiningDowntimeFactor float64 `yaml:"mining_downtime_factor"` // fraction of nominal laser time actually mining
	LimpetLossRate       float64 `yaml:"limpet_loss_rate"`       // fraction of limpets destroyed/expired

	// Gameplay overhead multipliers, one per mining mode.
	TimeMultiplierMapped   float64 `yaml:"time_multiplier_mapped"`
	TimeMultiplierUnmapped float64 `yaml:"time_multiplier_unmapped"`
	TimeMultiplierBeginner float64 `yaml:"time_multiplier_beginner"`
}

// MultiplierFor returns the time-inflation multiplier for the given mode.
// Unknown modes fall back to unmapped, the typical gameplay case.
func (g GameConfig) MultiplierFor(mode MiningMode) float64 {
	switch mode {
	case ModeMapped:
		return g.TimeMultiplierMapped
	case ModeBeginner:
		return g.TimeMultiplierBeginner
	default:
		return g.TimeMultiplierUnmapped
	}
}

// Commodity pairs a display name with its EDTools commodity ID.
type Commodity struct {
	Name string `yaml:"name"`
	CID  int    `yaml:"cid"`
}

// Config is the full application configuration.
type Config struct {
	SystemName string     `yaml:"system_name"`
	Mode       MiningMode `yaml:"mode"`

	// Buyer filters.
	MaxAgeMinutes float64 `yaml:"max_age_minutes"`
	MinPrice      float64 `yaml:"min_price"`

	TopRoutes int `yaml:"top_routes"`

	Ship        ShipProfile `yaml:"ship"`
	Game        GameConfig  `yaml:"game"`
	Commodities []Commodity `yaml:"commodities"`
}

// Default returns the stock configuration: the MU-18A Asp Miner loadout
// and community-verified mining rates.
func Default() *Config {
	return &Config{
		SystemName:    "Sol",
		Mode:          ModeUnmapped,
		MaxAgeMinutes: 12 * 60,
		MinPrice:      100_000,
		TopRoutes:     5,
		Ship: ShipProfile{
			Name:                 "MU-18A Asp Miner",
			CargoTons:            96,
			JumpRangeLY:          26.87,
			JumpTimeMin:          1.5,
			CollectorControllers: 2,
			NumLasers:            2,
			ShipValue:            21_598_088,
		},
		Game: GameConfig{
			LimpetCost:                  101.0,
			LimpetsPerTon:               1.0,
			LaserRatePerLaser:           2.5,
			CollectionRatePerController: 2.8,
			ProspectorBonus:             3.5,
			MiningDowntimeFactor:        0.85,
			LimpetLossRate:              0.10,
			TimeMultiplierMapped:        2.0,
			TimeMultiplierUnmapped:      3.5,
			TimeMultiplierBeginner:      5.0,
		},
		Commodities: []Commodity{
			{Name: "Platinum", CID: 46},
			{Name: "Osmium", CID: 97},
			{Name: "Painite", CID: 83},
			{Name: "LTD", CID: 276},
			{Name: "Rhodplumsite", CID: 343},
			{Name: "Serendibite", CID: 344},
			{Name: "Monazite", CID: 345},
		},
	}
}

// Load reads a YAML config file over the defaults, so partial files work.
func Load(path string) (*Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the invariants the route math depends on.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeMapped, ModeUnmapped, ModeBeginner:
	default:
		return fmt.Errorf("unknown mining mode %q", c.Mode)
	}
	if c.Ship.CargoTons <= 0 {
		return fmt.Errorf("ship cargo_tons must be > 0, got %d", c.Ship.CargoTons)
	}
	if c.Ship.JumpRangeLY <= 0 {
		return fmt.Errorf("ship jump_range_ly must be > 0, got %v", c.Ship.JumpRangeLY)
	}
	if c.Ship.JumpTimeMin < 0 {
		return fmt.Errorf("ship jump_time_min must be >= 0, got %v", c.Ship.JumpTimeMin)
	}
	if c.Ship.NumLasers < 0 || c.Ship.CollectorControllers < 0 {
		return fmt.Errorf("ship lasers/controllers must be >= 0")
	}
	if c.TopRoutes <= 0 {
		return fmt.Errorf("top_routes must be > 0, got %d", c.TopRoutes)
	}
	if len(c.Commodities) == 0 {
		return fmt.Errorf("commodity list is empty")
	}
	return nil
}

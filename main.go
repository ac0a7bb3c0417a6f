package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"elite-miner/internal/config"
	"elite-miner/internal/edapi"
	"elite-miner/internal/engine"
	"elite-miner/internal/logger"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to YAML config file (defaults used when empty)")
	system := flag.String("system", "", "current system name (prompted when empty)")
	mode := flag.String("mode", "", "mining mode: mapped, unmapped or beginner (prompted when empty)")
	top := flag.Int("top", 0, "number of routes to show (0 = config default)")
	flag.Parse()

	logger.Banner(version)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("Config", err.Error())
			os.Exit(1)
		}
		cfg = loaded
	}

	logger.Section("Ship")
	logger.Stats("Name", cfg.Ship.Name)
	logger.Stats("Cargo", fmt.Sprintf("%d t", cfg.Ship.CargoTons))
	logger.Stats("Jump range (laden)", fmt.Sprintf("%.2f LY", cfg.Ship.JumpRangeLY))
	logger.Stats("Lasers", cfg.Ship.NumLasers)
	logger.Stats("Collectors", cfg.Ship.CollectorControllers)

	stdin := bufio.NewReader(os.Stdin)

	systemName := strings.TrimSpace(*system)
	if systemName == "" {
		systemName = promptSystem(stdin, cfg.SystemName)
	}

	miningMode := config.MiningMode(strings.TrimSpace(*mode))
	if miningMode == "" {
		miningMode = promptMode(stdin, cfg.Mode)
	}
	switch miningMode {
	case config.ModeMapped, config.ModeUnmapped, config.ModeBeginner:
	default:
		logger.Error("Config", fmt.Sprintf("unknown mining mode %q", miningMode))
		os.Exit(1)
	}

	logger.Info("Run", fmt.Sprintf("Mode: %s (%.1fx time multiplier)", miningMode, cfg.Game.MultiplierFor(miningMode)))
	logger.Info("Run", fmt.Sprintf("Prospector bonus: %.1fx (A-rated)", cfg.Game.ProspectorBonus))

	opt := engine.NewOptimizer(edapi.NewClient(), cfg)
	routes, err := opt.Run(engine.SearchParams{
		SystemName: systemName,
		Mode:       miningMode,
		MaxResults: *top,
	}, func(msg string) { logger.Info("Run", msg) })
	switch {
	case errors.Is(err, engine.ErrNoRoutes):
		logger.Warn("Run", "No valid routes found. Try again later or relax the buyer filters.")
		return
	case err != nil:
		logger.Error("Run", err.Error())
		os.Exit(1)
	}

	printReport(routes)
	logger.Success("Run", "Analysis complete. Fly safe, CMDR o7")
}

// promptSystem reads the starting system, falling back to the default.
func promptSystem(r *bufio.Reader, def string) string {
	fmt.Printf("\nEnter your current system (default=%s): ", def)
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// promptMode shows the mining mode menu and maps the 1-3 choice.
func promptMode(r *bufio.Reader, def config.MiningMode) config.MiningMode {
	logger.Section("Select mining mode")
	fmt.Println("  1. Mapped routes (following mining guides, 2x slower than pure extraction)")
	fmt.Println("  2. Unmapped hotspots (random prospecting, 3.5x slower) [recommended]")
	fmt.Println("  3. Beginner/learning (5x slower)")
	fmt.Print("Select mode (1-3, default=2): ")

	line, _ := r.ReadString('\n')
	switch strings.TrimSpace(line) {
	case "1":
		return config.ModeMapped
	case "2":
		return config.ModeUnmapped
	case "3":
		return config.ModeBeginner
	default:
		return def
	}
}

func printReport(routes []engine.RouteResult) {
	logger.Section(fmt.Sprintf("Top %d laser mining routes (realistic Cr/h)", len(routes)))

	for i, r := range routes {
		fmt.Printf("\n#%d: %s\n", i+1, strings.ToUpper(r.Commodity))
		fmt.Printf("   Mine at:  %s\n", r.MineSystem)
		fmt.Printf("   Sell at:  %s / %s [Pad: %s]\n", r.SellSystem, r.SellStation, r.Pad)
		fmt.Printf("   Price:    %s Cr/t | Demand: %s | Data: %s\n",
			humanize.Comma(int64(r.Price)), humanize.Comma(int64(r.Demand)), r.Freshness)
		fmt.Printf("   Distance: %.1f LY to mine + %.1f LY to sell = %.1f LY\n",
			r.DistToMineLY, r.DistToSellLY, r.TotalDistanceLY)
		fmt.Printf("   Mining:   %.1f min pure @ %.2f t/min, %.1f min realistic @ %.2f t/min\n",
			r.ExtractionTimeMin, r.ExtractionRateTPM, r.RealisticTimeMin, r.RealisticRateTPM)
		fmt.Printf("   Travel:   %.1f min\n", r.TravelTimeMin)
		fmt.Printf("   Profit:   %s Cr -> %s Cr/h (tax: %.0f%%)\n",
			humanize.Comma(int64(r.Profit)), humanize.Comma(int64(r.CrPerHour)), r.BulkTaxFactor*100)
	}
	fmt.Println()
}

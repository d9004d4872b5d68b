package cmd

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"fleetsim/internal/core/domain/model/fleet"
)

// Config carries everything the process needs to start: the HTTP port for
// server mode and the simulation parameters shared by both modes.
type Config struct {
	HTTPPort string
	Settings fleet.Settings
}

// getConfigs loads configuration from the environment, reading a .env file
// first when one exists. Unset variables fall back to the documented
// simulation defaults; malformed values are fatal.
func getConfigs() Config {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	settings := fleet.Settings{
		TruckCount:        envInt("SIM_TRUCK_COUNT", fleet.DefaultTruckCount),
		DepotCount:        envInt("SIM_DEPOT_COUNT", fleet.DefaultDepotCount),
		CustomerCount:     envInt("SIM_CUSTOMER_COUNT", fleet.DefaultCustomerCount),
		TruckCapacity:     envInt("SIM_TRUCK_CAPACITY", fleet.DefaultTruckCapacity),
		DepotCapacity:     envInt("SIM_DEPOT_CAPACITY", fleet.DefaultDepotCapacity),
		ProductionRate:    envInt("SIM_PRODUCTION_RATE", fleet.DefaultProductionRate),
		InitialStock:      envInt("SIM_INITIAL_STOCK", fleet.DefaultInitialStock),
		InitialDemandMin:  envInt("SIM_INITIAL_DEMAND_MIN", fleet.DefaultInitialDemandMin),
		InitialDemandMax:  envInt("SIM_INITIAL_DEMAND_MAX", fleet.DefaultInitialDemandMax),
		DemandProbability: envFloat("SIM_DEMAND_PROBABILITY", fleet.DefaultDemandProbability),
		DemandMin:         envInt("SIM_DEMAND_MIN", fleet.DefaultDemandMin),
		DemandMax:         envInt("SIM_DEMAND_MAX", fleet.DefaultDemandMax),
		RouteProbability:  envFloat("SIM_ROUTE_PROBABILITY", fleet.DefaultRouteProbability),
		Seed:              envUint("SIM_SEED", fleet.DefaultSeed),
	}

	return Config{
		HTTPPort: envString("HTTP_PORT", "8080"),
		Settings: settings,
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %q", key, raw)
	}
	return value
}

func envUint(key string, fallback uint64) uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid unsigned integer for %s: %q", key, raw)
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid float for %s: %q", key, raw)
	}
	return value
}

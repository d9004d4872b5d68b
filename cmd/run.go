package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fleetsim/internal/core/application/usecases/commands"
	"fleetsim/internal/core/application/usecases/queries"
)

// RunCmd returns the batch mode command. It executes a fixed number of
// ticks against a freshly built fleet and prints a report.
func RunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation for a fixed number of ticks",
		Long: `Build a fleet from the environment configuration, advance it the
requested number of ticks and print a final report.

Usage:
  fleetsim run                 # 100 ticks with configured settings
  fleetsim run --ticks 500     # longer run
  fleetsim run --seed 42       # override the configured seed
  fleetsim run --logs          # include per-truck activity logs`,
		RunE: runSimulation,
	}

	cmd.Flags().Int("ticks", 100, "Number of ticks to simulate")
	cmd.Flags().Uint64("seed", 0, "Random seed override (0 keeps the configured seed)")
	cmd.Flags().Bool("logs", false, "Print the full activity log of every truck")

	return cmd
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	ticks, _ := cmd.Flags().GetInt("ticks")
	seed, _ := cmd.Flags().GetUint64("seed")
	withLogs, _ := cmd.Flags().GetBool("logs")

	config := getConfigs()
	if seed != 0 {
		config.Settings.Seed = seed
	}

	root, err := NewCompositionRoot(config)
	if err != nil {
		return fmt.Errorf("failed to build simulation: %w", err)
	}

	runCommand, err := commands.NewRunSimulationCommand(ticks)
	if err != nil {
		return err
	}

	runHandler := root.CreateRunSimulationCommandHandler()
	if err := runHandler.Handle(cmd.Context(), runCommand); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	return printReport(cmd.Context(), &root, withLogs)
}

func printReport(ctx context.Context, root *CompositionRoot, withLogs bool) error {
	snapshotHandler := root.CreateGetFleetSnapshotQueryHandler()
	snapshot, err := snapshotHandler.Handle(ctx, queries.NewGetFleetSnapshotQuery())
	if err != nil {
		return err
	}

	header := color.New(color.FgHiWhite, color.Bold)
	header.Printf("Simulation finished after %d ticks\n\n", snapshot.Tick)

	header.Println("Depots")
	for _, depot := range snapshot.Depots {
		fmt.Printf("  %s  stock %d/%d, produced %d total\n",
			color.New(color.FgHiBlue).Sprint(depot.Name),
			depot.Stock, depot.Capacity, depot.Produced)
	}

	header.Println("\nCustomers")
	for _, customer := range snapshot.Customers {
		demand := color.New(color.FgHiGreen).Sprintf("%d", customer.Demand)
		if customer.Demand > 0 {
			demand = color.New(color.FgYellow).Sprintf("%d", customer.Demand)
		}
		fmt.Printf("  %s  outstanding %s, received %d total\n",
			color.New(color.FgHiBlue).Sprint(customer.Name),
			demand, customer.Delivered)
	}

	header.Println("\nTrucks")
	for _, truck := range snapshot.Trucks {
		fmt.Printf("  %s  %s at %s, cargo %d/%d, %d stops pending\n",
			color.New(color.FgHiBlue).Sprint(truck.Name),
			color.New(color.FgCyan).Sprint(truck.Status),
			truck.Location, truck.Cargo, truck.CargoCapacity, truck.RouteStops)
	}

	if !withLogs {
		return nil
	}

	logHandler := root.CreateGetTruckLogQueryHandler()
	for _, truck := range snapshot.Trucks {
		header.Printf("\nLog of %s\n", truck.Name)

		query, err := queries.NewGetTruckLogQuery(truck.Name)
		if err != nil {
			return err
		}
		entries, err := logHandler.Handle(ctx, query)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			fmt.Printf("  [%4d] %-18s %-14s cargo %3d  %s\n",
				entry.Tick, entry.Status, entry.Location, entry.Cargo, entry.Comment)
		}
	}

	return nil
}

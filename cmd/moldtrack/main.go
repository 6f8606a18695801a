package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/moldworks/moldtrack/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing CSV files",
		)
		shiftsFile    = flag.String("shifts", "", "Path to shift records CSV file")
		ordersFile    = flag.String("orders", "", "Path to orders CSV file")
		shipmentsFile = flag.String("shipments", "", "Path to shipments CSV file")
		recipesFile   = flag.String("recipes", "", "Path to mold recipes CSV file")
		machinesFile  = flag.String("machines", "", "Path to machine catalog CSV file")
		date          = flag.String("date", "", "Date (YYYY-MM-DD) for the daily rollup")
		machine       = flag.String("machine", "", "Limit machine history to one machine id")
		mold          = flag.String("mold", "", "Limit the allocation report to one mold id")
		format        = flag.String("format", "text", "Output format: text, json, csv")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ScenarioDir:   *scenarioDir,
		ShiftsFile:    *shiftsFile,
		OrdersFile:    *ordersFile,
		ShipmentsFile: *shipmentsFile,
		RecipesFile:   *recipesFile,
		MachinesFile:  *machinesFile,
		Date:          *date,
		Machine:       *machine,
		Mold:          *mold,
		Format:        *format,
		Verbose:       *verbose,
		Help:          *help,
	}

	// Create and execute command
	cmd := commands.NewReportCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

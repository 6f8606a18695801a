package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moldworks/moldtrack/pkg/application/services"
	"github.com/moldworks/moldtrack/pkg/domain/entities"
	csvrepo "github.com/moldworks/moldtrack/pkg/infrastructure/repositories/csv"
	"github.com/moldworks/moldtrack/pkg/infrastructure/repositories/memory"
	"github.com/moldworks/moldtrack/pkg/interfaces/cli/output"
	"github.com/moldworks/moldtrack/pkg/production"
)

// Config holds the CLI configuration for a report run
type Config struct {
	ScenarioDir   string
	ShiftsFile    string
	OrdersFile    string
	ShipmentsFile string
	RecipesFile   string
	MachinesFile  string
	Date          string
	Machine       string
	Mold          string
	Format        string
	Verbose       bool
	Help          bool
}

// ReportCommand loads a scenario snapshot and renders the production and
// allocation report
type ReportCommand struct {
	config Config
}

// NewReportCommand creates a report command with the given configuration
func NewReportCommand(config Config) *ReportCommand {
	return &ReportCommand{config: config}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		printUsage()
		return nil
	}

	if err := c.resolveFiles(); err != nil {
		return err
	}

	service, catalog, err := c.buildService()
	if err != nil {
		return err
	}

	report := &output.Report{}

	report.Global, err = service.GlobalReport(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute global report: %w", err)
	}

	if c.config.Date != "" {
		daily, err := service.DailyReport(ctx, c.config.Date)
		if err != nil {
			return fmt.Errorf("failed to compute daily report: %w", err)
		}
		report.Daily = &daily
	}

	machines, err := catalog.GetMachines()
	if err != nil {
		return fmt.Errorf("failed to read machine catalog: %w", err)
	}
	for _, machine := range machines {
		if c.config.Machine != "" && string(machine.ID) != c.config.Machine {
			continue
		}
		averages, err := service.MachineHistory(ctx, machine.ID)
		if err != nil {
			return fmt.Errorf("failed to compute history for machine %s: %w", machine.ID, err)
		}
		report.Machines = append(report.Machines, averages)
	}
	if c.config.Machine != "" && len(report.Machines) == 0 {
		// A filtered machine may have shift records without a catalog row.
		averages, err := service.MachineHistory(ctx, entities.MachineID(c.config.Machine))
		if err != nil {
			return fmt.Errorf("failed to compute history for machine %s: %w", c.config.Machine, err)
		}
		report.Machines = append(report.Machines, averages)
	}

	report.Allocation, err = service.Allocations(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute allocations: %w", err)
	}
	if c.config.Mold != "" {
		filterAllocationByMold(report.Allocation, entities.MoldID(c.config.Mold))
	}

	return output.Generate(report, output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	})
}

// resolveFiles fills unset file paths from the scenario directory
func (c *ReportCommand) resolveFiles() error {
	if c.config.ScenarioDir != "" {
		if c.config.ShiftsFile == "" {
			c.config.ShiftsFile = filepath.Join(c.config.ScenarioDir, "shifts.csv")
		}
		if c.config.OrdersFile == "" {
			c.config.OrdersFile = filepath.Join(c.config.ScenarioDir, "orders.csv")
		}
		// Optional files are picked up only when present in the scenario.
		if c.config.ShipmentsFile == "" {
			c.config.ShipmentsFile = optionalFile(c.config.ScenarioDir, "shipments.csv")
		}
		if c.config.RecipesFile == "" {
			c.config.RecipesFile = optionalFile(c.config.ScenarioDir, "recipes.csv")
		}
		if c.config.MachinesFile == "" {
			c.config.MachinesFile = optionalFile(c.config.ScenarioDir, "machines.csv")
		}
	}

	if c.config.ShiftsFile == "" || c.config.OrdersFile == "" {
		return fmt.Errorf("shifts and orders files are required (use -scenario or -shifts/-orders)")
	}

	return nil
}

// filterAllocationByMold narrows the allocation report to one mold's pool
// and its orders. Orders without a mold stay listed.
func filterAllocationByMold(allocation *production.AllocationResult, moldID entities.MoldID) {
	for orderID, assignment := range allocation.PerOrder {
		if assignment.MoldID != moldID {
			delete(allocation.PerOrder, orderID)
		}
	}
	for id := range allocation.PerMold {
		if id != moldID {
			delete(allocation.PerMold, id)
		}
	}
}

func optionalFile(dir, name string) string {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func (c *ReportCommand) buildService() (*services.PlanningService, *memory.CatalogRepository, error) {
	loader := csvrepo.NewLoader()

	shiftRepo := memory.NewShiftRecordRepository()
	orderRepo := memory.NewOrderRepository()
	shipmentRepo := memory.NewShipmentRepository()
	catalogRepo := memory.NewCatalogRepository()

	shifts, err := loader.LoadShiftRecords(c.config.ShiftsFile)
	if err != nil {
		return nil, nil, err
	}
	if err := shiftRepo.LoadShiftRecords(shifts); err != nil {
		return nil, nil, err
	}

	orders, err := loader.LoadOrders(c.config.OrdersFile)
	if err != nil {
		return nil, nil, err
	}
	if err := orderRepo.LoadOrders(orders); err != nil {
		return nil, nil, err
	}

	if c.config.ShipmentsFile != "" {
		shipments, err := loader.LoadShipments(c.config.ShipmentsFile)
		if err != nil {
			return nil, nil, err
		}
		if err := shipmentRepo.LoadShipments(shipments); err != nil {
			return nil, nil, err
		}
	}

	if c.config.RecipesFile != "" {
		recipes, err := loader.LoadRecipes(c.config.RecipesFile)
		if err != nil {
			return nil, nil, err
		}
		if err := catalogRepo.LoadRecipes(recipes); err != nil {
			return nil, nil, err
		}
	}

	if c.config.MachinesFile != "" {
		machines, err := loader.LoadMachines(c.config.MachinesFile)
		if err != nil {
			return nil, nil, err
		}
		if err := catalogRepo.LoadMachines(machines); err != nil {
			return nil, nil, err
		}
	}

	if c.config.Verbose {
		fmt.Printf("Loaded %d shift records, %d orders\n", len(shifts), len(orders))
	}

	service := services.NewPlanningService(shiftRepo, orderRepo, shipmentRepo, catalogRepo, nil)
	return service, catalogRepo, nil
}

func printUsage() {
	fmt.Println("moldtrack - shift production metrics and FIFO order fulfillment")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  moldtrack -scenario <dir> [-date YYYY-MM-DD] [-machine ID] [-mold ID] [-format text|json|csv]")
	fmt.Println()
	fmt.Println("Scenario directory layout:")
	fmt.Println("  shifts.csv     machine_id,date,shift,operator,mold_id,part_id,cycle_seconds,hours,downtime_minutes,total_produced,scrap")
	fmt.Println("  orders.csv     order_id,part_id,mold_id,machine_id,target_qty,start_at,estimated_end,setup_minutes,state,cycle_override,cavity_override")
	fmt.Println("  shipments.csv  shipment_id,order_id,ship_date,quantity,destination,note,status")
	fmt.Println("  recipes.csv    mold_id,part_id,cycle_seconds,total_cavities,enabled_cavities,expected_scrap_pct,active")
	fmt.Println("  machines.csv   machine_id,name")
}

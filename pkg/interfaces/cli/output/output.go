package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
	"github.com/moldworks/moldtrack/pkg/production"
)

// Report is the assembled result set the CLI renders
type Report struct {
	Global     production.GlobalAggregate   `json:"global"`
	Daily      *production.DailyAggregate   `json:"daily,omitempty"`
	Machines   []production.MachineAverages `json:"machines,omitempty"`
	Allocation *production.AllocationResult `json:"allocation,omitempty"`
}

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// Generate creates output in the specified format
func Generate(report *Report, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report)
	case "csv":
		return generateCSVOutput(report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *Report, config Config) error {
	fmt.Printf("📊 Production Summary\n")
	fmt.Printf("=====================\n\n")

	fmt.Printf("Shift Records: %d\n", report.Global.RecordCount)
	fmt.Printf("Distinct Dates: %d\n", report.Global.DistinctDates)
	fmt.Printf("Total: %d  Scrap: %d  Good: %d\n", report.Global.Total, report.Global.Scrap, report.Global.Good)
	fmt.Printf("Performance: %.2f  Quality: %.2f  OEE: %.2f\n\n",
		report.Global.Performance, report.Global.Quality, report.Global.OEE)

	if report.Daily != nil {
		fmt.Printf("📅 Daily Rollup (%s)\n", report.Daily.Date)
		fmt.Printf("Records: %d  Total: %d  Scrap: %d  Good: %d  Target: %d\n",
			report.Daily.Count, report.Daily.Total, report.Daily.Scrap, report.Daily.Good, report.Daily.MetaTarget)
		fmt.Printf("Performance: %.2f  Quality: %.2f  OEE: %.2f\n\n",
			report.Daily.Performance, report.Daily.Quality, report.Daily.OEE)
	}

	if len(report.Machines) > 0 {
		fmt.Printf("🏭 Machine Averages:\n")
		fmt.Printf("%-12s %-8s %-8s %-8s %-8s %-8s\n",
			"Machine", "Records", "Avail", "Perf", "Quality", "OEE")
		fmt.Printf("%-12s %-8s %-8s %-8s %-8s %-8s\n",
			"------------", "--------", "--------", "--------", "--------", "--------")

		for _, machine := range report.Machines {
			fmt.Printf("%-12s %-8d %-8.2f %-8.2f %-8.2f %-8.2f\n",
				machine.MachineID,
				machine.RecordCount,
				machine.Availability,
				machine.Performance,
				machine.Quality,
				machine.OEE)
		}
		fmt.Println()
	}

	if report.Allocation != nil {
		printAllocationText(report.Allocation)
	}

	return nil
}

func printAllocationText(allocation *production.AllocationResult) {
	fmt.Printf("📦 FIFO Allocation by Mold:\n")

	for _, pool := range sortedPools(allocation) {
		fmt.Printf("\nMold %s: gross=%d shipped=%d net=%d remaining=%d\n",
			pool.MoldID, pool.Gross, pool.Shipped, pool.Net, pool.Remaining)
		fmt.Printf("%-12s %-10s %-10s %-10s %-10s %-10s\n",
			"Order", "Target", "Shipped", "Assigned", "Progress", "Pending")
		fmt.Printf("%-12s %-10s %-10s %-10s %-10s %-10s\n",
			"------------", "----------", "----------", "----------", "----------", "----------")

		for _, assignment := range sortedAssignments(allocation, pool.MoldID) {
			fmt.Printf("%-12s %-10d %-10d %-10d %-10d %-10d\n",
				assignment.OrderID,
				assignment.Target,
				assignment.Shipped,
				assignment.Assigned,
				assignment.Progress,
				assignment.Pending)
		}
	}

	if len(allocation.Unassigned) > 0 {
		fmt.Printf("\n⚠️  Orders without a mold (excluded from allocation):\n")
		for _, orderID := range allocation.Unassigned {
			fmt.Printf("  %s\n", orderID)
		}
	}
	fmt.Println()
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *Report) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// generateCSVOutput writes the per-order allocation rows as CSV
func generateCSVOutput(report *Report) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"mold_id", "order_id", "target", "shipped", "assigned", "progress", "pending"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if report.Allocation == nil {
		return nil
	}

	for _, pool := range sortedPools(report.Allocation) {
		for _, assignment := range sortedAssignments(report.Allocation, pool.MoldID) {
			row := []string{
				string(pool.MoldID),
				string(assignment.OrderID),
				strconv.FormatInt(int64(assignment.Target), 10),
				strconv.FormatInt(int64(assignment.Shipped), 10),
				strconv.FormatInt(int64(assignment.Assigned), 10),
				strconv.FormatInt(int64(assignment.Progress), 10),
				strconv.FormatInt(int64(assignment.Pending), 10),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	return nil
}

func sortedPools(allocation *production.AllocationResult) []production.MoldPool {
	pools := make([]production.MoldPool, 0, len(allocation.PerMold))
	for _, pool := range allocation.PerMold {
		pools = append(pools, pool)
	}
	sort.Slice(pools, func(i, j int) bool { return pools[i].MoldID < pools[j].MoldID })
	return pools
}

func sortedAssignments(allocation *production.AllocationResult, moldID entities.MoldID) []production.OrderAssignment {
	assignments := make([]production.OrderAssignment, 0)
	for _, assignment := range allocation.PerOrder {
		if assignment.MoldID == moldID {
			assignments = append(assignments, assignment)
		}
	}
	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].OrderID < assignments[j].OrderID
	})
	return assignments
}

package display

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/teranos/paw/retry"
	"github.com/teranos/paw/workflow"
)

// MachinesTable renders state machines as a table.
func MachinesTable(machines []workflow.Machine) (string, error) {
	data := [][]string{{"NAME", "ARN"}}
	for _, m := range machines {
		data = append(data, []string{m.Name, m.ARN})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// CatalogTable renders the executions of a catalog as a table, one row per
// execution in catalog order.
func CatalogTable(catalog *workflow.Catalog) (string, error) {
	data := [][]string{{"#", "NAME", "STARTED (UTC)", "ARN"}}
	for i, e := range catalog.Executions {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			e.Name,
			e.StartedAt.UTC().Format(time.RFC3339),
			e.ARN,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// PrintCatalog writes a catalog heading and table to w.
func PrintCatalog(w io.Writer, catalog *workflow.Catalog) error {
	if catalog.IsEmpty() {
		fmt.Fprintf(w, "No failed executions of %s in %s\n", catalog.Machine.Name, catalog.Window)
		return nil
	}

	table, err := CatalogTable(catalog)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d failed executions of %s in %s\n", catalog.Len(), catalog.Machine.Name, catalog.Window)
	fmt.Fprintln(w, table)
	return nil
}

// ReportSummary is the one-line outcome of a batch.
func ReportSummary(report retry.Report) string {
	if report.DryRun {
		return fmt.Sprintf("Dry run: %d of %d executions can be restarted", report.Skipped(), report.Total)
	}
	return fmt.Sprintf("Restarted %d of %d executions", report.Started(), report.Total)
}

// PrintReport writes the batch summary to w, as a warning when the batch
// stopped before every item was handled.
func PrintReport(w io.Writer, report retry.Report) {
	summary := ReportSummary(report)
	if !report.Complete() {
		pterm.Warning.WithWriter(w).Println(summary)
		return
	}
	pterm.Success.WithWriter(w).Println(summary)
}

package analytics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ExportResult describes one written output file.
type ExportResult struct {
	Type        string    `json:"type"` // "csv", "json"
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
}

// Exporter writes a run's report files under a per-run directory.
type Exporter struct {
	BaseOutputDir string
}

func NewExporter(baseOutputDir string) *Exporter {
	return &Exporter{BaseOutputDir: baseOutputDir}
}

// Export writes the customer and product reports as CSV and the full
// result as JSON into <base>/<run-id>/. It returns the run directory
// and one ExportResult per file; a failed file is reported in its
// result rather than aborting the remaining exports.
func (e *Exporter) Export(result *Result) (string, []ExportResult) {
	runID := uuid.New().String()
	runDir := filepath.Join(e.BaseOutputDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return runDir, []ExportResult{failed("dir", runDir, err)}
	}

	results := []ExportResult{
		e.exportCustomersCSV(filepath.Join(runDir, "report_customers.csv"), result.Customers),
		e.exportProductsCSV(filepath.Join(runDir, "report_products.csv"), result.Products),
		e.exportJSON(filepath.Join(runDir, "report.json"), result),
	}
	return runDir, results
}

func (e *Exporter) exportCustomersCSV(path string, reports []CustomerReport) ExportResult {
	header := []string{
		"customer_key", "customer_number", "name", "country", "age", "age_group",
		"segment", "total_orders", "total_sales", "total_quantity", "total_products",
		"last_order_date", "lifespan_months", "recency_months",
		"avg_order_value", "avg_monthly_spend",
	}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			strconv.Itoa(r.CustomerKey),
			r.CustomerNumber,
			r.Name,
			r.Country,
			strconv.Itoa(r.Age),
			r.AgeGroup,
			r.Segment,
			strconv.Itoa(r.TotalOrders),
			money(r.TotalSales),
			strconv.Itoa(r.TotalQuantity),
			strconv.Itoa(r.TotalProducts),
			day(r.LastOrder),
			strconv.Itoa(r.LifespanMonths),
			strconv.Itoa(r.RecencyMonths),
			money(r.AvgOrderValue),
			money(r.AvgMonthlySpend),
		})
	}
	return writeCSV(path, header, rows)
}

func (e *Exporter) exportProductsCSV(path string, reports []ProductReport) ExportResult {
	header := []string{
		"product_key", "product_name", "category", "subcategory", "cost",
		"cost_segment", "segment", "total_orders", "total_sales", "total_quantity",
		"total_customers", "last_order_date", "lifespan_months", "recency_months",
		"avg_selling_price", "avg_order_revenue", "avg_monthly_revenue",
	}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			strconv.Itoa(r.ProductKey),
			r.Name,
			r.Category,
			r.Subcategory,
			money(r.Cost),
			r.CostSegment,
			r.Segment,
			strconv.Itoa(r.TotalOrders),
			money(r.TotalSales),
			strconv.Itoa(r.TotalQuantity),
			strconv.Itoa(r.TotalCustomers),
			day(r.LastOrder),
			strconv.Itoa(r.LifespanMonths),
			strconv.Itoa(r.RecencyMonths),
			money(r.AvgSellingPrice),
			money(r.AvgOrderRevenue),
			money(r.AvgMonthlyRevenue),
		})
	}
	return writeCSV(path, header, rows)
}

func (e *Exporter) exportJSON(path string, result *Result) ExportResult {
	f, err := os.Create(path)
	if err != nil {
		return failed("json", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return failed("json", path, err)
	}
	return ExportResult{
		Type:        "json",
		Path:        path,
		RecordCount: len(result.Customers) + len(result.Products),
		Success:     true,
		ExportedAt:  time.Now().UTC(),
	}
}

func writeCSV(path string, header []string, rows [][]string) ExportResult {
	f, err := os.Create(path)
	if err != nil {
		return failed("csv", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return failed("csv", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return failed("csv", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return failed("csv", path, err)
	}
	return ExportResult{
		Type:        "csv",
		Path:        path,
		RecordCount: len(rows),
		Success:     true,
		ExportedAt:  time.Now().UTC(),
	}
}

func failed(kind, path string, err error) ExportResult {
	return ExportResult{
		Type:       kind,
		Path:       path,
		Error:      fmt.Sprintf("export failed: %v", err),
		ExportedAt: time.Now().UTC(),
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func day(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

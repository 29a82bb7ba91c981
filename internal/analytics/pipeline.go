package analytics

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales-analytics/internal/model"
	"sales-analytics/internal/rowsource"
	"sales-analytics/pkg/utils"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// Options parameterize one pipeline run. Now is the reference date for
// recency and age; it is injected so runs are deterministic.
type Options struct {
	Now        time.Time
	Thresholds Thresholds
	Range      *rowsource.DateRange
}

// Overview holds the headline measures of the whole row set.
type Overview struct {
	TotalSales          float64    `json:"total_sales"`
	TotalQuantity       int        `json:"total_quantity"`
	AvgPrice            float64    `json:"avg_price"`
	TotalOrders         int        `json:"total_orders"`
	TotalProducts       int        `json:"total_products"`
	TotalCustomers      int        `json:"total_customers"`
	CustomersWithOrders int        `json:"customers_with_orders"`
	FirstOrder          *time.Time `json:"first_order_date,omitempty"`
	LastOrder           *time.Time `json:"last_order_date,omitempty"`
	MonthsCovered       int        `json:"months_covered"`
}

// TrendPoint is one month of the sales trend with its cumulative and
// period-over-period fields.
type TrendPoint struct {
	Month        string  `json:"month"`
	Orders       int     `json:"orders"`
	Customers    int     `json:"customers"`
	Quantity     int     `json:"quantity"`
	Sales        float64 `json:"sales"`
	RunningTotal float64 `json:"running_total"`
	Delta        float64 `json:"delta"`
	Trend        string  `json:"trend"`
}

// ProductPerformance compares one product-year against the product's
// own average across years and against the prior year.
type ProductPerformance struct {
	Year          int      `json:"year"`
	ProductKey    int      `json:"product_key"`
	ProductName   string   `json:"product_name"`
	Sales         float64  `json:"sales"`
	AvgSales      float64  `json:"avg_sales"`
	DiffFromAvg   float64  `json:"diff_from_avg"`
	VsAverage     string   `json:"vs_average"`
	PriorSales    *float64 `json:"prior_sales,omitempty"`
	DiffFromPrior float64  `json:"diff_from_prior"`
	Trend         string   `json:"trend"`
}

// CategoryShare is the part-to-whole view over categories.
type CategoryShare struct {
	Category string  `json:"category"`
	Orders   int     `json:"orders"`
	Sales    float64 `json:"sales"`
	Share    float64 `json:"share"`
}

// Result is the full output of one pipeline run. It is rebuilt from
// scratch every run; nothing is updated incrementally.
type Result struct {
	GeneratedAt   time.Time            `json:"generated_at"`
	ReferenceDate time.Time            `json:"reference_date"`
	Overview      Overview             `json:"overview"`
	MonthlyTrend  []TrendPoint         `json:"monthly_trend"`
	Performance   []ProductPerformance `json:"product_performance"`
	CategoryShare []CategoryShare      `json:"category_share"`
	Customers     []CustomerReport     `json:"customers"`
	Products      []ProductReport      `json:"products"`
}

// Run executes the full pipeline against a snapshot of the source.
// Only data access failures propagate; every numeric edge case inside
// the computation resolves to a defined sentinel, so any successfully
// fetched row set produces a result.
func Run(ctx context.Context, src rowsource.Source, opts Options) (*Result, error) {
	start := time.Now()
	log.Info("Starting analytics run")

	customers, err := src.Customers(ctx)
	if err != nil {
		return nil, err
	}
	products, err := src.Products(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := src.Sales(ctx, opts.Range)
	if err != nil {
		return nil, err
	}
	log.Infof("Snapshot loaded: %d customers, %d products, %d sale lines",
		len(customers), len(products), len(sales))

	index := ProductIndex(products)
	result := &Result{
		GeneratedAt:   start.UTC(),
		ReferenceDate: opts.Now,
		Overview:      buildOverview(customers, products, sales),
		MonthlyTrend:  buildMonthlyTrend(sales),
		Performance:   buildPerformance(sales, index),
		CategoryShare: buildCategoryShare(sales, index),
		Customers:     ComposeCustomerReports(customers, sales, opts),
		Products:      ComposeProductReports(products, sales, opts),
	}

	log.Infof("Analytics run completed in %v: %d customer rows, %d product rows",
		time.Since(start), len(result.Customers), len(result.Products))
	return result, nil
}

func buildOverview(customers []model.Customer, products []model.Product, sales []model.SaleLine) Overview {
	orders := make(map[string]struct{})
	buyers := make(map[int]struct{})
	o := Overview{
		TotalProducts:  len(products),
		TotalCustomers: len(customers),
	}
	for i := range sales {
		s := &sales[i]
		o.TotalSales += s.Sales
		o.TotalQuantity += s.Quantity
		orders[s.OrderNumber] = struct{}{}
		buyers[s.CustomerKey] = struct{}{}
		if s.OrderDate == nil {
			continue
		}
		if o.FirstOrder == nil || s.OrderDate.Before(*o.FirstOrder) {
			d := *s.OrderDate
			o.FirstOrder = &d
		}
		if o.LastOrder == nil || s.OrderDate.After(*o.LastOrder) {
			d := *s.OrderDate
			o.LastOrder = &d
		}
	}
	o.TotalSales = utils.Round2(o.TotalSales)
	o.TotalOrders = len(orders)
	o.CustomersWithOrders = len(buyers)
	o.AvgPrice = utils.Round2(Avg(sales, func(s *model.SaleLine) (float64, bool) {
		return s.Price, true
	}))
	if o.FirstOrder != nil && o.LastOrder != nil {
		o.MonthsCovered = utils.MonthsBetween(*o.FirstOrder, *o.LastOrder)
	}
	return o
}

func buildMonthlyTrend(sales []model.SaleLine) []TrendPoint {
	agg := Aggregate(sales, ByMonth)

	points := make([]Point, len(agg))
	for i, row := range agg {
		points[i] = Point{Key: row.Key, Value: row.SumSales}
	}
	windowed := Analyze(points)

	// Aggregate and Analyze both order by the month key, so rows line
	// up by index.
	trend := make([]TrendPoint, len(agg))
	for i, row := range agg {
		trend[i] = TrendPoint{
			Month:        row.Key,
			Orders:       row.Orders,
			Customers:    row.Customers,
			Quantity:     row.SumQuantity,
			Sales:        row.SumSales,
			RunningTotal: windowed[i].RunningTotal,
			Delta:        windowed[i].Delta,
			Trend:        windowed[i].Trend,
		}
	}
	return trend
}

// perfKey joins product key and year into a composite group key.
// Zero-padding keeps lexical and numeric order identical.
func perfKey(productKey, year int) string {
	return fmt.Sprintf("%08d|%04d", productKey, year)
}

func buildPerformance(sales []model.SaleLine, index map[int]model.Product) []ProductPerformance {
	agg := Aggregate(sales, func(s *model.SaleLine) (string, bool) {
		if s.OrderDate == nil {
			return "", false
		}
		if _, ok := index[s.ProductKey]; !ok {
			return "", false
		}
		return perfKey(s.ProductKey, s.OrderDate.Year()), true
	})

	points := make([]Point, len(agg))
	for i, row := range agg {
		productKey, year := splitPerfKey(row.Key)
		// Zero-padded partition keeps output ordered by product key.
		points[i] = Point{
			Partition: fmt.Sprintf("%08d", productKey),
			Key:       strconv.Itoa(year),
			Value:     row.SumSales,
		}
	}

	perf := []ProductPerformance{}
	for _, row := range Analyze(points) {
		productKey, _ := strconv.Atoi(row.Partition)
		year, _ := strconv.Atoi(row.Key)
		perf = append(perf, ProductPerformance{
			Year:          year,
			ProductKey:    productKey,
			ProductName:   index[productKey].Name,
			Sales:         row.Value,
			AvgSales:      row.PartitionAvg,
			DiffFromAvg:   row.Value - row.PartitionAvg,
			VsAverage:     row.VsAverage,
			PriorSales:    row.Prior,
			DiffFromPrior: row.Delta,
			Trend:         row.Trend,
		})
	}
	return perf
}

func splitPerfKey(key string) (productKey, year int) {
	parts := strings.SplitN(key, "|", 2)
	productKey, _ = strconv.Atoi(parts[0])
	year, _ = strconv.Atoi(parts[1])
	return productKey, year
}

func buildCategoryShare(sales []model.SaleLine, index map[int]model.Product) []CategoryShare {
	agg := Aggregate(sales, ByCategory(index))

	points := make([]Point, len(agg))
	for i, row := range agg {
		points[i] = Point{Key: row.Key, Value: row.SumSales}
	}
	windowed := Analyze(points)

	shares := make([]CategoryShare, len(agg))
	for i, row := range agg {
		shares[i] = CategoryShare{
			Category: row.Key,
			Orders:   row.Orders,
			Sales:    row.SumSales,
			Share:    windowed[i].Share,
		}
	}
	return shares
}

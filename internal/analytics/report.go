package analytics

import (
	"cmp"
	"slices"
	"time"

	"sales-analytics/internal/model"
	"sales-analytics/pkg/utils"
)

// CustomerReport is the consolidated per-customer output row. Currency
// fields are rounded to two decimals here, at the presentation edge.
type CustomerReport struct {
	CustomerKey     int        `json:"customer_key"`
	CustomerNumber  string     `json:"customer_number"`
	Name            string     `json:"name"`
	Country         string     `json:"country"`
	Age             int        `json:"age"`
	AgeGroup        string     `json:"age_group"`
	Segment         string     `json:"segment"`
	TotalOrders     int        `json:"total_orders"`
	TotalSales      float64    `json:"total_sales"`
	TotalQuantity   int        `json:"total_quantity"`
	TotalProducts   int        `json:"total_products"`
	FirstOrder      *time.Time `json:"first_order_date,omitempty"`
	LastOrder       *time.Time `json:"last_order_date,omitempty"`
	LifespanMonths  int        `json:"lifespan_months"`
	RecencyMonths   int        `json:"recency_months"`
	AvgOrderValue   float64    `json:"avg_order_value"`
	AvgMonthlySpend float64    `json:"avg_monthly_spend"`
}

// ProductReport is the consolidated per-product output row.
type ProductReport struct {
	ProductKey        int        `json:"product_key"`
	Name              string     `json:"product_name"`
	Category          string     `json:"category"`
	Subcategory       string     `json:"subcategory"`
	Cost              float64    `json:"cost"`
	CostSegment       string     `json:"cost_segment"`
	Segment           string     `json:"segment"`
	TotalOrders       int        `json:"total_orders"`
	TotalSales        float64    `json:"total_sales"`
	TotalQuantity     int        `json:"total_quantity"`
	TotalCustomers    int        `json:"total_customers"`
	LastOrder         *time.Time `json:"last_order_date,omitempty"`
	LifespanMonths    int        `json:"lifespan_months"`
	RecencyMonths     int        `json:"recency_months"`
	AvgSellingPrice   float64    `json:"avg_selling_price"`
	AvgOrderRevenue   float64    `json:"avg_order_revenue"`
	AvgMonthlyRevenue float64    `json:"avg_monthly_revenue"`
}

// ComposeCustomerReports joins per-customer aggregates with
// segmentation and the recency/value KPIs. Only customers with at
// least one sale line appear; lines referencing an unknown customer
// key are dropped (inner-join semantics). Output is ordered by total
// sales descending, customer key ascending on ties.
func ComposeCustomerReports(customers []model.Customer, sales []model.SaleLine, opts Options) []CustomerReport {
	index := make(map[int]model.Customer, len(customers))
	for _, c := range customers {
		index[c.Key] = c
	}

	customerRules := CustomerRules(opts.Thresholds)
	ageRules := AgeRules()

	reports := []CustomerReport{}
	for _, row := range Aggregate(sales, ByCustomer) {
		c, ok := index[row.Key]
		if !ok {
			continue
		}

		r := CustomerReport{
			CustomerKey:    c.Key,
			CustomerNumber: c.Number,
			Name:           c.FullName(),
			Country:        c.Country,
			AgeGroup:       AgeGroupUnknown,
			TotalOrders:    row.Orders,
			TotalSales:     utils.Round2(row.SumSales),
			TotalQuantity:  row.SumQuantity,
			TotalProducts:  row.Products,
			FirstOrder:     row.FirstOrder,
			LastOrder:      row.LastOrder,
		}
		if c.Birthdate != nil {
			r.Age = utils.YearsBetween(*c.Birthdate, opts.Now)
			r.AgeGroup = ageRules.Label(r.Age)
		}
		if row.FirstOrder != nil && row.LastOrder != nil {
			r.LifespanMonths = utils.MonthsBetween(*row.FirstOrder, *row.LastOrder)
		}
		if row.LastOrder != nil {
			r.RecencyMonths = utils.MonthsBetween(*row.LastOrder, opts.Now)
		}
		r.Segment = customerRules.Label(CustomerMetrics{
			LifespanMonths: r.LifespanMonths,
			TotalSpend:     row.SumSales,
		})
		r.AvgOrderValue = utils.Round2(safeRatio(row.SumSales, float64(row.Orders)))
		if r.LifespanMonths > 0 {
			r.AvgMonthlySpend = utils.Round2(row.SumSales / float64(r.LifespanMonths))
		} else {
			// Entire spend attributed to a single effective month.
			r.AvgMonthlySpend = utils.Round2(row.SumSales)
		}
		reports = append(reports, r)
	}

	slices.SortFunc(reports, func(a, b CustomerReport) int {
		if c := cmp.Compare(b.TotalSales, a.TotalSales); c != 0 {
			return c
		}
		return cmp.Compare(a.CustomerKey, b.CustomerKey)
	})
	return reports
}

// ComposeProductReports mirrors the customer report on the product
// dimension, adding the cost and revenue segments.
func ComposeProductReports(products []model.Product, sales []model.SaleLine, opts Options) []ProductReport {
	index := ProductIndex(products)
	lines := make(map[int][]model.SaleLine)
	for _, s := range sales {
		lines[s.ProductKey] = append(lines[s.ProductKey], s)
	}

	costRules := CostRules(opts.Thresholds)
	revenueRules := RevenueRules()

	reports := []ProductReport{}
	for _, row := range Aggregate(sales, ByProduct) {
		p, ok := index[row.Key]
		if !ok {
			continue
		}

		r := ProductReport{
			ProductKey:     p.Key,
			Name:           p.Name,
			Category:       p.Category,
			Subcategory:    p.Subcategory,
			Cost:           utils.Round2(p.Cost),
			CostSegment:    costRules.Label(p.Cost),
			Segment:        revenueRules.Label(row.SumSales),
			TotalOrders:    row.Orders,
			TotalSales:     utils.Round2(row.SumSales),
			TotalQuantity:  row.SumQuantity,
			TotalCustomers: row.Customers,
			LastOrder:      row.LastOrder,
		}
		if row.FirstOrder != nil && row.LastOrder != nil {
			r.LifespanMonths = utils.MonthsBetween(*row.FirstOrder, *row.LastOrder)
		}
		if row.LastOrder != nil {
			r.RecencyMonths = utils.MonthsBetween(*row.LastOrder, opts.Now)
		}
		r.AvgSellingPrice = utils.Round2(Avg(lines[row.Key], func(s *model.SaleLine) (float64, bool) {
			return s.Price, true
		}))
		r.AvgOrderRevenue = utils.Round2(safeRatio(row.SumSales, float64(row.Orders)))
		if r.LifespanMonths > 0 {
			r.AvgMonthlyRevenue = utils.Round2(row.SumSales / float64(r.LifespanMonths))
		} else {
			r.AvgMonthlyRevenue = utils.Round2(row.SumSales)
		}
		reports = append(reports, r)
	}

	slices.SortFunc(reports, func(a, b ProductReport) int {
		if c := cmp.Compare(b.TotalSales, a.TotalSales); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductKey, b.ProductKey)
	})
	return reports
}

// safeRatio resolves division by zero to the 0 sentinel instead of a
// fault, per the pipeline's error policy.
func safeRatio(num, denom float64) float64 {
	if denom == 0 {
		return 0
	}
	return num / denom
}

package analytics

import (
	"context"
	"errors"
	"testing"

	"sales-analytics/internal/model"
	"sales-analytics/internal/rowsource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	customers []model.Customer
	products  []model.Product
	sales     []model.SaleLine
	err       error
}

func (f *fakeSource) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers, f.err
}

func (f *fakeSource) Products(ctx context.Context) ([]model.Product, error) {
	return f.products, f.err
}

func (f *fakeSource) Sales(ctx context.Context, r *rowsource.DateRange) ([]model.SaleLine, error) {
	return f.sales, f.err
}

func fixtureSource() *fakeSource {
	return &fakeSource{
		customers: []model.Customer{
			{Key: 1, Number: "AW001", FirstName: "Jon", LastName: "Yang"},
			{Key: 2, Number: "AW002", FirstName: "Eugene", LastName: "Huang"},
			{Key: 3, Number: "AW003", FirstName: "Idle", LastName: "Nobody"}, // never orders
		},
		products: []model.Product{
			{Key: 10, Name: "Mountain-200", Category: "Bikes", Cost: 1250},
			{Key: 11, Name: "Water Bottle", Category: "Accessories", Cost: 2},
		},
		sales: []model.SaleLine{
			{OrderNumber: "SO1", CustomerKey: 1, ProductKey: 10, OrderDate: date(2013, 1, 10), Sales: 100, Quantity: 1, Price: 100},
			{OrderNumber: "SO2", CustomerKey: 2, ProductKey: 10, OrderDate: date(2013, 2, 10), Sales: 200, Quantity: 1, Price: 200},
			{OrderNumber: "SO3", CustomerKey: 1, ProductKey: 11, OrderDate: date(2013, 3, 10), Sales: 150, Quantity: 3, Price: 50},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	result, err := Run(context.Background(), fixtureSource(), testOptions())
	require.NoError(t, err)

	assert.Equal(t, 450.0, result.Overview.TotalSales)
	assert.Equal(t, 3, result.Overview.TotalOrders)
	assert.Equal(t, 3, result.Overview.TotalCustomers)
	assert.Equal(t, 2, result.Overview.CustomersWithOrders)
	assert.Equal(t, 2, result.Overview.MonthsCovered)

	require.Len(t, result.MonthlyTrend, 3)
	assert.Equal(t, []float64{100, 300, 450}, []float64{
		result.MonthlyTrend[0].RunningTotal,
		result.MonthlyTrend[1].RunningTotal,
		result.MonthlyTrend[2].RunningTotal,
	})
	assert.Equal(t, TrendNoPrior, result.MonthlyTrend[0].Trend)
	assert.Equal(t, TrendIncrease, result.MonthlyTrend[1].Trend)
	assert.Equal(t, TrendDecrease, result.MonthlyTrend[2].Trend)

	var shareTotal float64
	for _, c := range result.CategoryShare {
		shareTotal += c.Share
	}
	assert.InDelta(t, 100.0, shareTotal, 0.01)

	// Only purchasing customers appear, every one labeled.
	require.Len(t, result.Customers, 2)
	for _, c := range result.Customers {
		assert.NotEmpty(t, c.Segment)
	}
	assert.Equal(t, 250.0, result.Customers[0].TotalSales)
	assert.Equal(t, 1, result.Customers[0].CustomerKey)

	require.Len(t, result.Products, 2)
	assert.Equal(t, "Above 1000", result.Products[0].CostSegment)
}

func TestRunProductPerformance(t *testing.T) {
	src := fixtureSource()
	src.sales = []model.SaleLine{
		{OrderNumber: "SO1", CustomerKey: 1, ProductKey: 10, OrderDate: date(2012, 6, 1), Sales: 1000, Quantity: 1},
		{OrderNumber: "SO2", CustomerKey: 1, ProductKey: 10, OrderDate: date(2013, 6, 1), Sales: 1400, Quantity: 1},
	}
	result, err := Run(context.Background(), src, testOptions())
	require.NoError(t, err)

	require.Len(t, result.Performance, 2)
	first, second := result.Performance[0], result.Performance[1]
	assert.Equal(t, 2012, first.Year)
	assert.Equal(t, TrendNoPrior, first.Trend)
	assert.Equal(t, BelowAverage, first.VsAverage)
	assert.Equal(t, 2013, second.Year)
	assert.Equal(t, TrendIncrease, second.Trend)
	require.NotNil(t, second.PriorSales)
	assert.Equal(t, 1000.0, *second.PriorSales)
	assert.Equal(t, 400.0, second.DiffFromPrior)
	assert.Equal(t, "Mountain-200", second.ProductName)
}

func TestRunEmptySourceYieldsEmptyResult(t *testing.T) {
	result, err := Run(context.Background(), &fakeSource{}, testOptions())
	require.NoError(t, err, "an empty row set is not an error")

	assert.Equal(t, 0.0, result.Overview.TotalSales)
	assert.Empty(t, result.MonthlyTrend)
	assert.Empty(t, result.CategoryShare)
	assert.Empty(t, result.Customers)
	assert.Empty(t, result.Products)
}

func TestRunPropagatesDataAccessError(t *testing.T) {
	src := &fakeSource{err: &rowsource.DataAccessError{Op: "fetch customers", Err: errors.New("db gone")}}
	_, err := Run(context.Background(), src, testOptions())
	require.Error(t, err)

	var dae *rowsource.DataAccessError
	assert.True(t, errors.As(err, &dae))
}

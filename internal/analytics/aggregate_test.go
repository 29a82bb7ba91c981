package analytics

import (
	"testing"
	"time"

	"sales-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAggregateByMonth(t *testing.T) {
	sales := []model.SaleLine{
		{OrderNumber: "SO1", CustomerKey: 1, ProductKey: 10, OrderDate: date(2013, 1, 5), Sales: 100, Quantity: 1},
		{OrderNumber: "SO1", CustomerKey: 1, ProductKey: 11, OrderDate: date(2013, 1, 5), Sales: 50, Quantity: 2},
		{OrderNumber: "SO2", CustomerKey: 2, ProductKey: 10, OrderDate: date(2013, 2, 10), Sales: 200, Quantity: 1},
		{OrderNumber: "SO3", CustomerKey: 1, ProductKey: 10, OrderDate: nil, Sales: 999, Quantity: 9},
	}

	rows := Aggregate(sales, ByMonth)
	require.Len(t, rows, 2, "null order dates must be excluded, not bucketed")

	jan := rows[0]
	assert.Equal(t, "2013-01", jan.Key)
	assert.Equal(t, 150.0, jan.SumSales)
	assert.Equal(t, 3, jan.SumQuantity)
	assert.Equal(t, 1, jan.Orders, "two lines of the same order count once")
	assert.Equal(t, 2, jan.Products)
	assert.Equal(t, 1, jan.Customers)

	feb := rows[1]
	assert.Equal(t, "2013-02", feb.Key)
	assert.Equal(t, 200.0, feb.SumSales)
}

func TestAggregateByCustomer(t *testing.T) {
	sales := []model.SaleLine{
		{OrderNumber: "SO1", CustomerKey: 7, ProductKey: 1, OrderDate: date(2013, 3, 1), Sales: 10, Quantity: 1},
		{OrderNumber: "SO2", CustomerKey: 7, ProductKey: 2, OrderDate: date(2013, 6, 15), Sales: 20, Quantity: 1},
		{OrderNumber: "SO3", CustomerKey: 9, ProductKey: 1, OrderDate: date(2013, 4, 1), Sales: 30, Quantity: 1},
	}

	rows := Aggregate(sales, ByCustomer)
	require.Len(t, rows, 2)
	assert.Equal(t, 7, rows[0].Key)
	assert.Equal(t, 2, rows[0].Orders)
	assert.Equal(t, 2, rows[0].Products)
	require.NotNil(t, rows[0].FirstOrder)
	require.NotNil(t, rows[0].LastOrder)
	assert.Equal(t, *date(2013, 3, 1), *rows[0].FirstOrder)
	assert.Equal(t, *date(2013, 6, 15), *rows[0].LastOrder)
}

func TestAggregateByCategoryUnknownProductExcluded(t *testing.T) {
	index := map[int]model.Product{
		10: {Key: 10, Category: "Bikes"},
	}
	sales := []model.SaleLine{
		{OrderNumber: "SO1", ProductKey: 10, OrderDate: date(2013, 1, 1), Sales: 100},
		{OrderNumber: "SO2", ProductKey: 999, OrderDate: date(2013, 1, 1), Sales: 100},
	}

	rows := Aggregate(sales, ByCategory(index))
	require.Len(t, rows, 1)
	assert.Equal(t, "Bikes", rows[0].Key)
	assert.Equal(t, 100.0, rows[0].SumSales)
}

func TestAggregateEmptyInput(t *testing.T) {
	rows := Aggregate(nil, ByMonth)
	assert.Empty(t, rows)
}

func TestAvgSkipsMissingValues(t *testing.T) {
	sales := []model.SaleLine{
		{Price: 10},
		{Price: 0}, // treated as missing by the selector below
		{Price: 20},
	}
	avg := Avg(sales, func(s *model.SaleLine) (float64, bool) {
		return s.Price, s.Price != 0
	})
	assert.Equal(t, 15.0, avg, "missing values leave both numerator and denominator")
}

func TestAvgEmptyIsZero(t *testing.T) {
	avg := Avg(nil, func(s *model.SaleLine) (float64, bool) { return s.Price, true })
	assert.Equal(t, 0.0, avg)
}

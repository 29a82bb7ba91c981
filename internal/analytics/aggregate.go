package analytics

import (
	"cmp"
	"slices"
	"time"

	"sales-analytics/internal/model"
	"sales-analytics/pkg/utils"
)

// KeyFunc derives the grouping key for a sale line. ok=false drops the
// row from the grouping entirely (e.g. time buckets exclude sales with
// no order date rather than collecting them in an "unknown" bucket).
type KeyFunc[K cmp.Ordered] func(s *model.SaleLine) (key K, ok bool)

// AggregateRow holds the measures for one distinct group key. Counts
// of orders, customers and products are distinct counts.
type AggregateRow[K cmp.Ordered] struct {
	Key         K
	SumSales    float64
	SumQuantity int
	Orders      int
	Customers   int
	Products    int
	Rows        int
	FirstOrder  *time.Time
	LastOrder   *time.Time
}

type aggState struct {
	sumSales    float64
	sumQuantity int
	rows        int
	orders      map[string]struct{}
	customers   map[int]struct{}
	products    map[int]struct{}
	firstOrder  *time.Time
	lastOrder   *time.Time
}

func newAggState() *aggState {
	return &aggState{
		orders:    make(map[string]struct{}),
		customers: make(map[int]struct{}),
		products:  make(map[int]struct{}),
	}
}

func (a *aggState) add(s *model.SaleLine) {
	a.sumSales += s.Sales
	a.sumQuantity += s.Quantity
	a.rows++
	a.orders[s.OrderNumber] = struct{}{}
	a.customers[s.CustomerKey] = struct{}{}
	a.products[s.ProductKey] = struct{}{}
	if s.OrderDate == nil {
		return
	}
	if a.firstOrder == nil || s.OrderDate.Before(*a.firstOrder) {
		d := *s.OrderDate
		a.firstOrder = &d
	}
	if a.lastOrder == nil || s.OrderDate.After(*a.lastOrder) {
		d := *s.OrderDate
		a.lastOrder = &d
	}
}

// Aggregate groups sale lines by key and accumulates the measures of
// each group. The result carries exactly one row per distinct key,
// sorted by key ascending so downstream window passes see a stable
// order. Sums are exact; nothing is rounded here.
func Aggregate[K cmp.Ordered](sales []model.SaleLine, key KeyFunc[K]) []AggregateRow[K] {
	groups := make(map[K]*aggState)
	for i := range sales {
		k, ok := key(&sales[i])
		if !ok {
			continue
		}
		state, exists := groups[k]
		if !exists {
			state = newAggState()
			groups[k] = state
		}
		state.add(&sales[i])
	}

	result := make([]AggregateRow[K], 0, len(groups))
	for k, state := range groups {
		result = append(result, AggregateRow[K]{
			Key:         k,
			SumSales:    state.sumSales,
			SumQuantity: state.sumQuantity,
			Orders:      len(state.orders),
			Customers:   len(state.customers),
			Products:    len(state.products),
			Rows:        state.rows,
			FirstOrder:  state.firstOrder,
			LastOrder:   state.lastOrder,
		})
	}
	slices.SortFunc(result, func(a, b AggregateRow[K]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return result
}

// Avg computes the mean of field over the given lines. Lines where the
// field reports no value are excluded from both numerator and
// denominator; an empty set yields 0 rather than an arithmetic fault.
func Avg(sales []model.SaleLine, field func(s *model.SaleLine) (float64, bool)) float64 {
	var sum float64
	var n int
	for i := range sales {
		v, ok := field(&sales[i])
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// --- Grouping key functions ---

func ByYear(s *model.SaleLine) (int, bool) {
	if s.OrderDate == nil {
		return 0, false
	}
	return s.OrderDate.Year(), true
}

func ByMonth(s *model.SaleLine) (string, bool) {
	if s.OrderDate == nil {
		return "", false
	}
	return utils.FormatMonth(*s.OrderDate), true
}

func ByCustomer(s *model.SaleLine) (int, bool) {
	return s.CustomerKey, true
}

func ByProduct(s *model.SaleLine) (int, bool) {
	return s.ProductKey, true
}

// ByCategory groups through the product dimension. Lines referencing
// an unknown product are excluded, matching inner-join semantics.
func ByCategory(products map[int]model.Product) KeyFunc[string] {
	return func(s *model.SaleLine) (string, bool) {
		p, ok := products[s.ProductKey]
		if !ok {
			return "", false
		}
		return p.Category, true
	}
}

// ProductIndex builds the key → product lookup used by joins.
func ProductIndex(products []model.Product) map[int]model.Product {
	index := make(map[int]model.Product, len(products))
	for _, p := range products {
		index[p.Key] = p
	}
	return index
}

package analytics

import "strconv"

// Segment labels for the built-in rule sets.
const (
	SegmentVIP     = "VIP"
	SegmentRegular = "Regular"
	SegmentNew     = "New"

	SegmentHighPerformer = "High-Performer"
	SegmentMidRange      = "Mid-Range"
	SegmentLowPerformer  = "Low-Performer"

	AgeGroupUnknown = "n/a"
)

// Thresholds are the tunable boundaries of the built-in rule sets.
type Thresholds struct {
	VIPMinSpend       float64
	RegularMaxSpend   float64
	MinLifespanMonths int
	CostLow           float64
	CostMid           float64
	CostHigh          float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		VIPMinSpend:       5000,
		RegularMaxSpend:   4000,
		MinLifespanMonths: 12,
		CostLow:           100,
		CostMid:           500,
		CostHigh:          1000,
	}
}

// Rule pairs a predicate with the label it assigns.
type Rule[T any] struct {
	Label string
	When  func(T) bool
}

// RuleSet is an ordered list of rules with a mandatory default, so
// labeling is total. Rule order is significant: overlapping ranges
// resolve to the earliest matching rule.
type RuleSet[T any] struct {
	Rules   []Rule[T]
	Default string
}

// Label returns the label of the first matching rule, or the default
// when none match.
func (rs RuleSet[T]) Label(v T) string {
	for _, r := range rs.Rules {
		if r.When(v) {
			return r.Label
		}
	}
	return rs.Default
}

// CustomerMetrics are the attributes customer segmentation reads.
type CustomerMetrics struct {
	LifespanMonths int
	TotalSpend     float64
}

// CustomerRules builds the VIP/Regular/New rule set. Spend values in
// the open interval (RegularMaxSpend, VIPMinSpend) match neither rule
// and fall through to New even for long-lived customers; the gap is
// part of the published rule set and is preserved, not closed.
func CustomerRules(t Thresholds) RuleSet[CustomerMetrics] {
	return RuleSet[CustomerMetrics]{
		Rules: []Rule[CustomerMetrics]{
			{Label: SegmentVIP, When: func(m CustomerMetrics) bool {
				return m.LifespanMonths >= t.MinLifespanMonths && m.TotalSpend >= t.VIPMinSpend
			}},
			{Label: SegmentRegular, When: func(m CustomerMetrics) bool {
				return m.LifespanMonths >= t.MinLifespanMonths && m.TotalSpend <= t.RegularMaxSpend
			}},
		},
		Default: SegmentNew,
	}
}

// CostRules builds the product cost range rule set. A cost equal to
// CostMid matches both the middle ranges; first match wins, so it
// lands in the lower one.
func CostRules(t Thresholds) RuleSet[float64] {
	low := formatBound(t.CostLow)
	mid := formatBound(t.CostMid)
	high := formatBound(t.CostHigh)
	return RuleSet[float64]{
		Rules: []Rule[float64]{
			{Label: "Below " + low, When: func(c float64) bool { return c < t.CostLow }},
			{Label: low + "-" + mid, When: func(c float64) bool { return c <= t.CostMid }},
			{Label: mid + "-" + high, When: func(c float64) bool { return c <= t.CostHigh }},
		},
		Default: "Above " + high,
	}
}

// RevenueRules classifies products by total revenue.
func RevenueRules() RuleSet[float64] {
	return RuleSet[float64]{
		Rules: []Rule[float64]{
			{Label: SegmentHighPerformer, When: func(s float64) bool { return s > 50000 }},
			{Label: SegmentMidRange, When: func(s float64) bool { return s >= 10000 }},
		},
		Default: SegmentLowPerformer,
	}
}

// AgeRules buckets customer age for the report.
func AgeRules() RuleSet[int] {
	return RuleSet[int]{
		Rules: []Rule[int]{
			{Label: "Under 20", When: func(a int) bool { return a < 20 }},
			{Label: "20-29", When: func(a int) bool { return a <= 29 }},
			{Label: "30-39", When: func(a int) bool { return a <= 39 }},
			{Label: "40-49", When: func(a int) bool { return a <= 49 }},
		},
		Default: "50 and above",
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

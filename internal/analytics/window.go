package analytics

import (
	"cmp"
	"slices"
)

// Classifications produced by the window passes.
const (
	AboveAverage = "Above Avg"
	BelowAverage = "Below Avg"
	AtAverage    = "Avg"

	TrendIncrease = "Increase"
	TrendDecrease = "Decrease"
	TrendNoChange = "No Change"
	TrendNoPrior  = "No Prior Data"
)

// Point is one input row for the window analyzer. Partition scopes the
// partition average, lag and share computations; an empty Partition
// puts every row in one global scope. Key is the sort key within a
// partition (e.g. a YYYY-MM month bucket).
type Point struct {
	Partition string  `json:"partition,omitempty"`
	Key       string  `json:"key"`
	Value     float64 `json:"value"`
}

// WindowRow is a Point with every derived window field attached.
type WindowRow struct {
	Point
	RunningTotal float64  `json:"running_total"`
	PartitionAvg float64  `json:"partition_avg"`
	VsAverage    string   `json:"vs_average"`
	Prior        *float64 `json:"prior,omitempty"`
	Delta        float64  `json:"delta"`
	Trend        string   `json:"trend"`
	Share        float64  `json:"share"`
}

// Analyze computes running totals, partition averages, prior-period
// deltas and part-to-whole shares in one pass.
//
// Rows are ordered by (partition, key) ascending before anything is
// computed; rows with equal sort keys keep their input order (stable
// sort), which is the declared tie-break. The running total is the
// prefix sum within a partition. The first row of a partition has no
// prior value and is classified TrendNoPrior, which is distinct from
// TrendNoChange. Shares within a partition sum to 100 except when the
// partition total is zero, in which case every share is 0.
func Analyze(points []Point) []WindowRow {
	rows := make([]WindowRow, len(points))
	for i, p := range points {
		rows[i] = WindowRow{Point: p}
	}
	slices.SortStableFunc(rows, func(a, b WindowRow) int {
		if c := cmp.Compare(a.Partition, b.Partition); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	for start := 0; start < len(rows); {
		end := start
		for end < len(rows) && rows[end].Partition == rows[start].Partition {
			end++
		}
		analyzePartition(rows[start:end])
		start = end
	}
	return rows
}

func analyzePartition(rows []WindowRow) {
	var total float64
	for i := range rows {
		total += rows[i].Value
	}
	avg := total / float64(len(rows))

	var running float64
	for i := range rows {
		running += rows[i].Value
		rows[i].RunningTotal = running
		rows[i].PartitionAvg = avg

		switch diff := rows[i].Value - avg; {
		case diff > 0:
			rows[i].VsAverage = AboveAverage
		case diff < 0:
			rows[i].VsAverage = BelowAverage
		default:
			rows[i].VsAverage = AtAverage
		}

		if i == 0 {
			rows[i].Trend = TrendNoPrior
		} else {
			prior := rows[i-1].Value
			rows[i].Prior = &prior
			rows[i].Delta = rows[i].Value - prior
			switch {
			case rows[i].Delta > 0:
				rows[i].Trend = TrendIncrease
			case rows[i].Delta < 0:
				rows[i].Trend = TrendDecrease
			default:
				rows[i].Trend = TrendNoChange
			}
		}

		if total != 0 {
			rows[i].Share = 100 * rows[i].Value / total
		}
	}
}

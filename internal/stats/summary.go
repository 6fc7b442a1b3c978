package stats

import "gonum.org/v1/gonum/stat"

// TableSummary describes one generated table for run reports.
type TableSummary struct {
	Rows   int
	Cols   int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize flattens a row-major table and reports its shape and moments.
// An empty table yields the zero summary.
func Summarize(table [][]float64) TableSummary {
	if len(table) == 0 || len(table[0]) == 0 {
		return TableSummary{Rows: len(table)}
	}

	flat := make([]float64, 0, len(table)*len(table[0]))
	minV := table[0][0]
	maxV := table[0][0]
	for _, row := range table {
		for _, v := range row {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
			flat = append(flat, v)
		}
	}

	summary := TableSummary{
		Rows: len(table),
		Cols: len(table[0]),
		Min:  minV,
		Max:  maxV,
		Mean: stat.Mean(flat, nil),
	}
	if len(flat) > 1 {
		summary.StdDev = stat.StdDev(flat, nil)
	}
	return summary
}

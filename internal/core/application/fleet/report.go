package fleet

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// ProfitReport summarizes a run: per-carrier baseline profit before and
// after, plus fleet totals.
type ProfitReport struct {
	Ticks             int                `json:"ticks"`
	ProfitBeforeTotal float64            `json:"profit_before_total"`
	ProfitAfterTotal  float64            `json:"profit_after_total"`
	ProfitBefore      map[string]float64 `json:"profit_before"`
	ProfitAfter       map[string]float64 `json:"profit_after"`
	Finished          bool               `json:"finished"`
}

// BuildProfitReport assembles a report from before/after profit snapshots.
// Values are rounded to two decimals.
func BuildProfitReport(ticks int, before, after map[string]float64) ProfitReport {
	report := ProfitReport{
		Ticks:        ticks,
		ProfitBefore: make(map[string]float64, len(before)),
		ProfitAfter:  make(map[string]float64, len(after)),
		Finished:     true,
	}

	for name, profit := range before {
		report.ProfitBefore[name] = round2(profit)
		report.ProfitBeforeTotal += profit
	}
	for name, profit := range after {
		report.ProfitAfter[name] = round2(profit)
		report.ProfitAfterTotal += profit
	}
	report.ProfitBeforeTotal = round2(report.ProfitBeforeTotal)
	report.ProfitAfterTotal = round2(report.ProfitAfterTotal)

	return report
}

// WriteTable renders the report as a per-carrier table with a totals row.
func (r ProfitReport) WriteTable(w io.Writer) error {
	names := make([]string, 0, len(r.ProfitBefore))
	for name := range r.ProfitBefore {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(w)
	table.Header("Carrier", "Profit before", "Profit after", "Delta")

	for _, name := range names {
		before := r.ProfitBefore[name]
		after := r.ProfitAfter[name]
		table.Append(name,
			fmt.Sprintf("%.2f", before),
			fmt.Sprintf("%.2f", after),
			fmt.Sprintf("%+.2f", round2(after-before)),
		)
	}
	table.Append("TOTAL",
		fmt.Sprintf("%.2f", r.ProfitBeforeTotal),
		fmt.Sprintf("%.2f", r.ProfitAfterTotal),
		fmt.Sprintf("%+.2f", round2(r.ProfitAfterTotal-r.ProfitBeforeTotal)),
	)

	return table.Render()
}

// WriteJSON writes the report as indented JSON.
func (r ProfitReport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

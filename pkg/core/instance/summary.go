package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const previewRows = 8

// Summary renders a human-readable report of the loaded inputs: matrix
// previews, totals, and the derived fairness target. It mirrors what the
// inspect command prints before a solve.
func (in *Instance) Summary() string {
	h := in.Horizon
	var b strings.Builder

	fmt.Fprintf(&b, "Horizon: %d staff, %d shift types, %d days\n", h.Staff, h.ShiftTypes, h.Days)

	fmt.Fprintf(&b, "\nAvailability [staff x day] (%d x %d)\n", h.Staff, h.Days)
	for s := 0; s < h.Staff && s < previewRows; s++ {
		cells := make([]string, h.Days)
		for d := 0; d < h.Days; d++ {
			if in.Availability[s][d] {
				cells[d] = "1"
			} else {
				cells[d] = "0"
			}
		}
		fmt.Fprintf(&b, "  staff %d: %s\n", s, strings.Join(cells, ","))
	}
	if h.Staff > previewRows {
		fmt.Fprintf(&b, "  ... (%d more rows hidden)\n", h.Staff-previewRows)
	}

	fmt.Fprintf(&b, "\nCoverage [shift x day] (%d x %d)\n", h.ShiftTypes, h.Days)
	for t := 0; t < h.ShiftTypes; t++ {
		cells := make([]string, h.Days)
		for d := 0; d < h.Days; d++ {
			cells[d] = strconv.Itoa(in.Coverage[t][d])
		}
		fmt.Fprintf(&b, "  shift %d: %s\n", t, strings.Join(cells, ","))
	}

	fmt.Fprintf(&b, "\nPreferences [staff x shift] (%d x %d)\n", h.Staff, h.ShiftTypes)
	for s := 0; s < h.Staff && s < previewRows; s++ {
		cells := make([]string, h.ShiftTypes)
		for t := 0; t < h.ShiftTypes; t++ {
			cells[t] = strconv.FormatFloat(in.Preference[s][t], 'f', 3, 64)
		}
		fmt.Fprintf(&b, "  staff %d: %s\n", s, strings.Join(cells, ","))
	}
	if h.Staff > previewRows {
		fmt.Fprintf(&b, "  ... (%d more rows hidden)\n", h.Staff-previewRows)
	}

	fmt.Fprintf(&b, "\nWork bounds per staff (first %d):\n", previewRows)
	for s := 0; s < h.Staff && s < previewRows; s++ {
		fmt.Fprintf(&b, "  staff %d: min=%d max=%d\n", s, in.MinWork[s], in.MaxWork[s])
	}
	if h.Staff > previewRows {
		fmt.Fprintf(&b, "  ... (%d more staff hidden)\n", h.Staff-previewRows)
	}

	fmt.Fprintf(&b, "\nTotal demand over horizon = %d\n", in.TotalDemand())
	if target, err := in.FairnessTarget(); err == nil {
		fmt.Fprintf(&b, "Fairness target = %.3f\n", target)
	}

	return b.String()
}

// Dump writes the instance back out as the conventional CSV files plus the
// sizes descriptor, for external cross-checking in a spreadsheet.
func (in *Instance) Dump(dir string) error {
	h := in.Horizon

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create dump directory: %w", err)
	}

	sizes := fmt.Sprintf("%d %d %d\n", h.Staff, h.ShiftTypes, h.Days)
	if err := os.WriteFile(filepath.Join(dir, SizesFile), []byte(sizes), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", SizesFile, err)
	}

	avail := make([][]string, h.Staff)
	for s := 0; s < h.Staff; s++ {
		avail[s] = make([]string, h.Days)
		for d := 0; d < h.Days; d++ {
			if in.Availability[s][d] {
				avail[s][d] = "1"
			} else {
				avail[s][d] = "0"
			}
		}
	}
	if err := writeCSV(filepath.Join(dir, AvailabilityFile), avail); err != nil {
		return err
	}

	cover := make([][]string, h.ShiftTypes)
	for t := 0; t < h.ShiftTypes; t++ {
		cover[t] = make([]string, h.Days)
		for d := 0; d < h.Days; d++ {
			cover[t][d] = strconv.Itoa(in.Coverage[t][d])
		}
	}
	if err := writeCSV(filepath.Join(dir, CoverageFile), cover); err != nil {
		return err
	}

	cost := make([][]string, h.Staff*h.ShiftTypes)
	for s := 0; s < h.Staff; s++ {
		for t := 0; t < h.ShiftTypes; t++ {
			row := make([]string, h.Days)
			for d := 0; d < h.Days; d++ {
				row[d] = strconv.FormatFloat(in.Cost.At(s, t, d), 'f', 6, 64)
			}
			cost[s*h.ShiftTypes+t] = row
		}
	}
	if err := writeCSV(filepath.Join(dir, CostFile), cost); err != nil {
		return err
	}

	pref := make([][]string, h.Staff)
	for s := 0; s < h.Staff; s++ {
		pref[s] = make([]string, h.ShiftTypes)
		for t := 0; t < h.ShiftTypes; t++ {
			pref[s][t] = strconv.FormatFloat(in.Preference[s][t], 'f', 6, 64)
		}
	}
	if err := writeCSV(filepath.Join(dir, PreferenceFile), pref); err != nil {
		return err
	}

	bounds := make([][]string, h.Staff)
	for s := 0; s < h.Staff; s++ {
		bounds[s] = []string{strconv.Itoa(in.MinWork[s]), strconv.Itoa(in.MaxWork[s])}
	}
	return writeCSV(filepath.Join(dir, WorkBoundsFile), bounds)
}

func writeCSV(path string, rows [][]string) error {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

package instance

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Conventional file names for a directory-based instance, matching the CSV
// layout the engine has always consumed.
const (
	SizesFile        = "sizes.txt"
	AvailabilityFile = "availability.csv"
	CoverageFile     = "req_cover.csv"
	CostFile         = "assign_cost.csv"
	PreferenceFile   = "pref_score.csv"
	WorkBoundsFile   = "work_bounds.csv"
)

// MatrixSource yields one rectangular matrix of numbers. Implementations
// must be usable once per Load call; Rows may be called at most once.
type MatrixSource interface {
	// Name identifies the source in error messages.
	Name() string
	// Rows returns the raw matrix. Rows may be ragged; Load rejects that
	// with a DimensionError.
	Rows() ([][]float64, error)
}

// CSVFile reads a matrix from a comma-separated file. Blank lines and lines
// starting with '#' are skipped.
type CSVFile struct {
	Path string
}

func (f CSVFile) Name() string { return filepath.Base(f.Path) }

func (f CSVFile) Rows() ([][]float64, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, f.Path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, f.Path, err)
	}

	var rows [][]float64
	for i, record := range records {
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &InvalidValueError{
					Source: f.Name(),
					Row:    i,
					Col:    j,
					Reason: fmt.Sprintf("is not numeric (%q)", field),
				}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Memory is an in-memory matrix source, used by tests and by callers that
// already hold their data.
type Memory struct {
	Label string
	Data  [][]float64
}

func (m Memory) Name() string              { return m.Label }
func (m Memory) Rows() ([][]float64, error) { return m.Data, nil }

// Sources bundles the five matrix inputs of one run.
type Sources struct {
	Availability MatrixSource
	Coverage     MatrixSource
	Cost         MatrixSource
	Preference   MatrixSource
	WorkBounds   MatrixSource
}

// DirSources builds Sources from the conventional file names under dir.
func DirSources(dir string) Sources {
	return Sources{
		Availability: CSVFile{Path: filepath.Join(dir, AvailabilityFile)},
		Coverage:     CSVFile{Path: filepath.Join(dir, CoverageFile)},
		Cost:         CSVFile{Path: filepath.Join(dir, CostFile)},
		Preference:   CSVFile{Path: filepath.Join(dir, PreferenceFile)},
		WorkBounds:   CSVFile{Path: filepath.Join(dir, WorkBoundsFile)},
	}
}

// HorizonFromFile reads a horizon descriptor: three whitespace-separated
// positive integers (staff, shift types, days).
func HorizonFromFile(path string) (Horizon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Horizon{}, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) != 3 {
		return Horizon{}, fmt.Errorf("%s: expected 3 integers, got %d fields", filepath.Base(path), len(fields))
	}

	ints := make([]int, 3)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Horizon{}, fmt.Errorf("%s: field %d is not an integer (%q)", filepath.Base(path), i, f)
		}
		ints[i] = n
	}

	h := Horizon{Staff: ints[0], ShiftTypes: ints[1], Days: ints[2]}
	if err := h.Valid(); err != nil {
		return Horizon{}, err
	}
	return h, nil
}

// Load reads and validates all five matrices against the horizon. It is
// all-or-nothing: on any error the returned instance is nil and nothing is
// partially populated.
func Load(h Horizon, src Sources) (*Instance, error) {
	inst, err := New(h)
	if err != nil {
		return nil, err
	}

	if err := loadAvailability(inst, src.Availability); err != nil {
		return nil, err
	}
	if err := loadCoverage(inst, src.Coverage); err != nil {
		return nil, err
	}
	if err := loadCost(inst, src.Cost); err != nil {
		return nil, err
	}
	if err := loadPreference(inst, src.Preference); err != nil {
		return nil, err
	}
	if err := loadWorkBounds(inst, src.WorkBounds); err != nil {
		return nil, err
	}

	return inst, nil
}

// fetch reads a source and checks its shape.
func fetch(src MatrixSource, wantRows, wantCols int) ([][]float64, error) {
	rows, err := src.Rows()
	if err != nil {
		return nil, err
	}

	gotCols := 0
	if len(rows) > 0 {
		gotCols = len(rows[0])
	}
	if len(rows) != wantRows {
		return nil, &DimensionError{Source: src.Name(), WantRows: wantRows, WantCols: wantCols, GotRows: len(rows), GotCols: gotCols}
	}
	for _, row := range rows {
		if len(row) != wantCols {
			return nil, &DimensionError{Source: src.Name(), WantRows: wantRows, WantCols: wantCols, GotRows: len(rows), GotCols: len(row)}
		}
	}
	return rows, nil
}

func isWholeNumber(v float64) bool {
	return v == math.Trunc(v)
}

func loadAvailability(inst *Instance, src MatrixSource) error {
	h := inst.Horizon
	rows, err := fetch(src, h.Staff, h.Days)
	if err != nil {
		return err
	}
	for s := 0; s < h.Staff; s++ {
		for d := 0; d < h.Days; d++ {
			v := rows[s][d]
			if v != 0 && v != 1 {
				return &InvalidValueError{Source: src.Name(), Row: s, Col: d, Value: v, Reason: "must be 0 or 1"}
			}
			inst.Availability[s][d] = v == 1
		}
	}
	return nil
}

func loadCoverage(inst *Instance, src MatrixSource) error {
	h := inst.Horizon
	rows, err := fetch(src, h.ShiftTypes, h.Days)
	if err != nil {
		return err
	}
	for t := 0; t < h.ShiftTypes; t++ {
		for d := 0; d < h.Days; d++ {
			v := rows[t][d]
			if v < 0 || !isWholeNumber(v) {
				return &InvalidValueError{Source: src.Name(), Row: t, Col: d, Value: v, Reason: "must be a non-negative integer"}
			}
			inst.Coverage[t][d] = int(v)
		}
	}
	return nil
}

// loadCost consumes the flattened (staff*shiftTypes) x days layout,
// staff-major with shift type as the minor row order.
func loadCost(inst *Instance, src MatrixSource) error {
	h := inst.Horizon
	rows, err := fetch(src, h.Staff*h.ShiftTypes, h.Days)
	if err != nil {
		return err
	}
	for s := 0; s < h.Staff; s++ {
		for t := 0; t < h.ShiftTypes; t++ {
			row := rows[s*h.ShiftTypes+t]
			for d := 0; d < h.Days; d++ {
				v := row[d]
				if v < 0 {
					return &InvalidValueError{Source: src.Name(), Row: s*h.ShiftTypes + t, Col: d, Value: v, Reason: "must be non-negative"}
				}
				inst.Cost.Set(s, t, d, v)
			}
		}
	}
	return nil
}

func loadPreference(inst *Instance, src MatrixSource) error {
	h := inst.Horizon
	rows, err := fetch(src, h.Staff, h.ShiftTypes)
	if err != nil {
		return err
	}
	for s := 0; s < h.Staff; s++ {
		for t := 0; t < h.ShiftTypes; t++ {
			v := rows[s][t]
			if v < 0 || v > 1 {
				return &InvalidValueError{Source: src.Name(), Row: s, Col: t, Value: v, Reason: "must be in [0,1]"}
			}
			inst.Preference[s][t] = v
		}
	}
	return nil
}

func loadWorkBounds(inst *Instance, src MatrixSource) error {
	h := inst.Horizon
	rows, err := fetch(src, h.Staff, 2)
	if err != nil {
		return err
	}
	for s := 0; s < h.Staff; s++ {
		lo, hi := rows[s][0], rows[s][1]
		if !isWholeNumber(lo) || lo < 0 {
			return &InvalidValueError{Source: src.Name(), Row: s, Col: 0, Value: lo, Reason: "must be a non-negative integer"}
		}
		if !isWholeNumber(hi) || hi < 0 {
			return &InvalidValueError{Source: src.Name(), Row: s, Col: 1, Value: hi, Reason: "must be a non-negative integer"}
		}
		if lo > hi {
			return &InvalidValueError{Source: src.Name(), Row: s, Col: 0, Value: lo, Reason: "exceeds the maximum workload"}
		}
		inst.MinWork[s] = int(lo)
		inst.MaxWork[s] = int(hi)
	}
	return nil
}

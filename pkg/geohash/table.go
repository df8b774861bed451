package geohash

import "fmt"

const (
	MinPrecision = 1
	MaxPrecision = 12
)

// TableEntry is the approximate ground size, in meters, of a geohash cell at one precision.
type TableEntry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// precisionTable is ordered coarse to fine; index i holds precision i+1.
var precisionTable = [MaxPrecision]TableEntry{
	{5009400.0, 4992000.6},
	{1252300.0, 624100.0},
	{156500.0, 156000.0},
	{39100.0, 19500.0},
	{4900.0, 4900.0},
	{1200.0, 609.4},
	{152.9, 152.4},
	{38.2, 19.0},
	{4.8, 4.8},
	{1.2, 0.595},
	{0.14, 0.149},
	{0.037, 0.019},
}

// Table returns a copy of the precision table, coarsest first.
func Table() []TableEntry {
	out := make([]TableEntry, len(precisionTable))
	copy(out, precisionTable[:])
	return out
}

func CellSize(precision int) (TableEntry, error) {
	if precision < MinPrecision || precision > MaxPrecision {
		return TableEntry{}, fmt.Errorf("cell size of precision %d: %w", precision, ErrPrecisionOutOfRange)
	}
	return precisionTable[precision-1], nil
}

// LookupPrecision returns the coarsest precision whose cell is exceeded by the requested
// width or height (meters), or MaxPrecision when the request is finer than every cell.
func LookupPrecision(width, height float64) int {
	for i, entry := range precisionTable {
		if width > entry.Width || height > entry.Height {
			return i + 1
		}
	}
	return MaxPrecision
}

package geohash

import (
	"fmt"
	"strings"

	"lintang/geogrid/pkg/geo"
)

// AxisMode decides which corner pairs measure a bounding box's width and height.
type AxisMode uint8

const (
	// AxisDiagonal measures both axes along TopLeft -> BottomRight, so width == height.
	AxisDiagonal AxisMode = iota
	// AxisEdges measures width along TopLeft -> TopRight and height along TopLeft -> BottomLeft.
	AxisEdges
)

func ParseAxisMode(s string) (AxisMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "diagonal":
		return AxisDiagonal, nil
	case "edges":
		return AxisEdges, nil
	default:
		return AxisDiagonal, fmt.Errorf("parse axis mode %q: %w", s, ErrUnknownAxisMode)
	}
}

func (m AxisMode) String() string {
	if m == AxisEdges {
		return "edges"
	}
	return "diagonal"
}

// Tiling is the outcome of splitting a bounding box into cells.
type Tiling struct {
	Squares    int      `json:"squares"`
	XDivisions int      `json:"x_divisions"`
	YDivisions int      `json:"y_divisions"`
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	CellWidth  float64  `json:"cell_width"`
	CellHeight float64  `json:"cell_height"`
	Precision  int      `json:"precision"`
	Unit       geo.Unit `json:"-"`
	AxisMode   AxisMode `json:"-"`
}

type Resolver struct {
	axisMode AxisMode
}

type Option func(*Resolver)

func WithAxisMode(mode AxisMode) Option {
	return func(r *Resolver) {
		r.axisMode = mode
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{axisMode: AxisDiagonal}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolvePrecision picks the geohash precision for tiling the box given by its two corners
// into squares cells. Both axes are measured along the same corner pair; use a Resolver with
// AxisEdges to measure width and height independently.
func ResolvePrecision(box [2]geo.GeoPoint, squares int, unit string) (int, error) {
	tiling, err := NewResolver().Resolve(geo.NewBoundingBox(box), squares, geo.ParseUnit(unit))
	if err != nil {
		return 0, err
	}
	return tiling.Precision, nil
}

// Resolve splits squares into squares/2 columns and squares/4 rows. The box extents are
// distances in unit scaled by 1000, which is meters only when unit is Kilometers.
func (r *Resolver) Resolve(box geo.BoundingBox, squares int, unit geo.Unit) (Tiling, error) {
	if squares%2 != 0 {
		return Tiling{}, fmt.Errorf("resolve precision for %d squares: %w", squares, ErrInvalidArgument)
	}
	if squares < 4 {
		return Tiling{}, fmt.Errorf("resolve precision for %d squares: %w", squares, ErrDegenerateDivision)
	}

	xDivisions := squares / 2
	yDivisions := xDivisions / 2

	width, height := r.measure(box, unit)

	cellWidth := width / float64(xDivisions)
	cellHeight := height / float64(yDivisions)

	return Tiling{
		Squares:    squares,
		XDivisions: xDivisions,
		YDivisions: yDivisions,
		Width:      width,
		Height:     height,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Precision:  LookupPrecision(cellWidth, cellHeight),
		Unit:       unit,
		AxisMode:   r.axisMode,
	}, nil
}

func (r *Resolver) measure(box geo.BoundingBox, unit geo.Unit) (float64, float64) {
	if r.axisMode == AxisEdges {
		width := geo.DistanceBetween(box.TopLeft, box.TopRight(), unit) * 1000
		height := geo.DistanceBetween(box.TopLeft, box.BottomLeft(), unit) * 1000
		return width, height
	}

	diagonal := geo.DistanceBetween(box.TopLeft, box.BottomRight, unit) * 1000
	return diagonal, diagonal
}

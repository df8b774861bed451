package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lintang/geogrid/pkg/geo"
	"lintang/geogrid/pkg/geohash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMetrics struct {
	precisions map[int]int
	errors     map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{precisions: map[int]int{}, errors: map[string]int{}}
}

func (m *fakeMetrics) ObservePrecision(precision int, axisMode string) {
	m.precisions[precision]++
}

func (m *fakeMetrics) ObserveResolveError(reason string) {
	m.errors[reason]++
}

var barcelona = geo.BoundingBox{
	TopLeft:     geo.NewGeoPoint(41.5926176, 2.1693494),
	BottomRight: geo.NewGeoPoint(41.3326176, 2.0693494),
}

func TestGeoServiceDistance(t *testing.T) {
	svc := NewGeoService(newFakeMetrics(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	dist, unit := svc.Distance(context.Background(), barcelona.TopLeft, barcelona.BottomRight, "n")
	assert.Equal(t, geo.NauticalMiles, unit)
	assert.InDelta(t, 16.234442580828087, dist, 1e-7)
}

func TestGeoServiceResolvePrecision(t *testing.T) {
	m := newFakeMetrics()
	svc := NewGeoService(m, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	tiling, err := svc.ResolvePrecision(ctx, barcelona, 8, "K", geohash.AxisDiagonal)
	require.NoError(t, err)
	assert.Equal(t, 5, tiling.Precision)
	assert.Equal(t, tiling.Width, tiling.Height)

	tiling, err = svc.ResolvePrecision(ctx, barcelona, 8, "K", geohash.AxisEdges)
	require.NoError(t, err)
	assert.Equal(t, 5, tiling.Precision)
	assert.NotEqual(t, tiling.Width, tiling.Height)
	assert.Equal(t, 2, m.precisions[5])

	_, err = svc.ResolvePrecision(ctx, barcelona, 7, "K", geohash.AxisDiagonal)
	assert.ErrorIs(t, err, geohash.ErrInvalidArgument)
	_, err = svc.ResolvePrecision(ctx, barcelona, 2, "K", geohash.AxisDiagonal)
	assert.ErrorIs(t, err, geohash.ErrDegenerateDivision)
	assert.Equal(t, 1, m.errors["odd_squares"])
	assert.Equal(t, 1, m.errors["degenerate_division"])
}

func TestGeoServicePrecisionTable(t *testing.T) {
	svc := NewGeoService(newFakeMetrics(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	table := svc.PrecisionTable(context.Background())
	assert.Len(t, table, geohash.MaxPrecision)
}

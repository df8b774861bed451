package geohash

import (
	"cmp"
	"math"
	"testing"

	"github.com/golang/geo/s2"
	mmgeohash "github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestTableIsStrictlyDecreasing(t *testing.T) {
	table := Table()
	require.Len(t, table, MaxPrecision)

	widthDesc := func(a, b TableEntry) int { return cmp.Compare(b.Width, a.Width) }
	heightDesc := func(a, b TableEntry) int { return cmp.Compare(b.Height, a.Height) }
	assert.True(t, slices.IsSortedFunc(table, widthDesc))
	assert.True(t, slices.IsSortedFunc(table, heightDesc))

	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i-1].Width, table[i].Width)
		assert.Greater(t, table[i-1].Height, table[i].Height)
	}
}

func TestTableReturnsCopy(t *testing.T) {
	table := Table()
	table[0].Width = 1

	entry, err := CellSize(1)
	require.NoError(t, err)
	assert.Equal(t, 5009400.0, entry.Width)
}

func TestCellSize(t *testing.T) {
	entry, err := CellSize(7)
	require.NoError(t, err)
	assert.Equal(t, TableEntry{Width: 152.9, Height: 152.4}, entry)

	for _, p := range []int{0, -1, 13} {
		_, err := CellSize(p)
		assert.ErrorIs(t, err, ErrPrecisionOutOfRange)
	}
}

func TestLookupPrecision(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
		expected      int
	}{
		{"finer than finest cell", 0.01, 0.01, 12},
		{"coarser than coarsest cell", 10_000_000, 10_000_000, 1},
		{"zero", 0, 0, 12},
		{"width alone exceeds", 5_000_000, 0, 2},
		{"height alone exceeds", 0, 700_000, 2},
		{"equal to threshold is not exceeding", 4900, 4900, 6},
		{"just above threshold", 4900.0001, 0, 5},
		{"barcelona diagonal, 8 squares", 7521.534650161273, 15043.069300322546, 5},
		{"level 11 width quirk", 0.145, 0, 11},
		{"negative sizes", -5, -5, 12},
		{"infinite", math.Inf(1), 1, 1},
		{"NaN never exceeds", math.NaN(), math.NaN(), 12},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, LookupPrecision(c.width, c.height))
		})
	}
}

func TestLookupPrecisionMonotonic(t *testing.T) {
	heights := []float64{0, 0.01, 10, 5000, 1_000_000}
	for _, h := range heights {
		prev := MaxPrecision + 1
		for w := 0.001; w < 2e7; w *= 1.7 {
			p := LookupPrecision(w, h)
			assert.GreaterOrEqual(t, p, MinPrecision)
			assert.LessOrEqual(t, p, MaxPrecision)
			assert.LessOrEqual(t, p, prev, "width %f height %f", w, h)
			prev = p
		}
	}
}

// the table approximates the real geohash cell dimensions at the equator.
func TestTableTracksGeohashCells(t *testing.T) {
	const earthRadiusM = 6371008.8

	for precision := MinPrecision; precision <= MaxPrecision; precision++ {
		hash := mmgeohash.EncodeWithPrecision(0.000001, 0.000001, uint(precision))
		box := mmgeohash.BoundingBox(hash)

		sw := s2.LatLngFromDegrees(box.MinLat, box.MinLng)
		width := sw.Distance(s2.LatLngFromDegrees(box.MinLat, box.MaxLng)).Radians() * earthRadiusM
		height := sw.Distance(s2.LatLngFromDegrees(box.MaxLat, box.MinLng)).Radians() * earthRadiusM

		entry, err := CellSize(precision)
		require.NoError(t, err)
		assert.InEpsilon(t, width, entry.Width, 0.1, "precision %d width", precision)
		assert.InEpsilon(t, height, entry.Height, 0.1, "precision %d height", precision)
	}
}

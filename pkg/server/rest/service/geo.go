package service

import (
	"context"
	"errors"
	"log/slog"

	"lintang/geogrid/pkg/geo"
	"lintang/geogrid/pkg/geohash"
)

type GeoService struct {
	diagonal *geohash.Resolver
	edges    *geohash.Resolver
	metrics  Metrics
	log      *slog.Logger
}

func NewGeoService(metrics Metrics, log *slog.Logger) *GeoService {
	return &GeoService{
		diagonal: geohash.NewResolver(geohash.WithAxisMode(geohash.AxisDiagonal)),
		edges:    geohash.NewResolver(geohash.WithAxisMode(geohash.AxisEdges)),
		metrics:  metrics,
		log:      log,
	}
}

func (s *GeoService) Distance(ctx context.Context, from, to geo.GeoPoint, unit string) (float64, geo.Unit) {
	u := geo.ParseUnit(unit)
	return geo.DistanceBetween(from, to, u), u
}

func (s *GeoService) ResolvePrecision(ctx context.Context, box geo.BoundingBox, squares int, unit string,
	mode geohash.AxisMode) (geohash.Tiling, error) {
	resolver := s.diagonal
	if mode == geohash.AxisEdges {
		resolver = s.edges
	}

	tiling, err := resolver.Resolve(box, squares, geo.ParseUnit(unit))
	if err != nil {
		s.metrics.ObserveResolveError(resolveErrorReason(err))
		s.log.DebugContext(ctx, "resolve precision rejected", "squares", squares, "error", err)
		return geohash.Tiling{}, err
	}

	s.metrics.ObservePrecision(tiling.Precision, mode.String())
	s.log.DebugContext(ctx, "resolved precision",
		"squares", squares,
		"axis_mode", mode.String(),
		"unit", tiling.Unit.String(),
		"cell_width", tiling.CellWidth,
		"cell_height", tiling.CellHeight,
		"precision", tiling.Precision,
	)
	return tiling, nil
}

func (s *GeoService) PrecisionTable(ctx context.Context) []geohash.TableEntry {
	return geohash.Table()
}

func resolveErrorReason(err error) string {
	switch {
	case errors.Is(err, geohash.ErrInvalidArgument):
		return "odd_squares"
	case errors.Is(err, geohash.ErrDegenerateDivision):
		return "degenerate_division"
	default:
		return "other"
	}
}

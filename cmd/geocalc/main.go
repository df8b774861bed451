package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lintang/geogrid/pkg/geo"
	"lintang/geogrid/pkg/geohash"
)

var (
	lat1    = flag.Float64("lat1", 0, "latitude of the first point (top-left corner)")
	lon1    = flag.Float64("lon1", 0, "longitude of the first point (top-left corner)")
	lat2    = flag.Float64("lat2", 0, "latitude of the second point (bottom-right corner)")
	lon2    = flag.Float64("lon2", 0, "longitude of the second point (bottom-right corner)")
	unit    = flag.String("unit", "K", "K/KM kilometers, N/MN nautical miles, anything else miles")
	squares = flag.Int("squares", 0, "resolve the geohash precision for this many cells (even, >= 4)")
	edges   = flag.Bool("edges", false, "measure box width and height along its edges instead of the diagonal")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	u := geo.ParseUnit(*unit)
	dist := geo.DistanceIn(*lat1, *lon1, *lat2, *lon2, u)
	fmt.Printf("distance: %v %s\n", dist, u)

	if *squares == 0 {
		return
	}

	mode := geohash.AxisDiagonal
	if *edges {
		mode = geohash.AxisEdges
	}
	box := geo.BoundingBox{TopLeft: geo.NewGeoPoint(*lat1, *lon1), BottomRight: geo.NewGeoPoint(*lat2, *lon2)}

	tiling, err := geohash.NewResolver(geohash.WithAxisMode(mode)).Resolve(box, *squares, u)
	if err != nil {
		log.Printf("geocalc: %v", err)
		os.Exit(2)
	}

	fmt.Printf("grid: %d x %d cells of %.3f x %.3f (%s axes)\n",
		tiling.XDivisions, tiling.YDivisions, tiling.CellWidth, tiling.CellHeight, mode)
	fmt.Printf("precision: %d\n", tiling.Precision)
}

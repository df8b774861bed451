package geo

// GeoPoint is a latitude/longitude pair in decimal degrees. Ranges are not checked.
type GeoPoint struct {
	Lat float64
	Lon float64
}

func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Lat: lat, Lon: lon}
}

// BoundingBox is conventionally (top-left, bottom-right), but nothing requires the
// second corner to be south-east of the first.
type BoundingBox struct {
	TopLeft     GeoPoint
	BottomRight GeoPoint
}

func NewBoundingBox(corners [2]GeoPoint) BoundingBox {
	return BoundingBox{TopLeft: corners[0], BottomRight: corners[1]}
}

func (b BoundingBox) Corners() [2]GeoPoint {
	return [2]GeoPoint{b.TopLeft, b.BottomRight}
}

func (b BoundingBox) TopRight() GeoPoint {
	return GeoPoint{Lat: b.TopLeft.Lat, Lon: b.BottomRight.Lon}
}

func (b BoundingBox) BottomLeft() GeoPoint {
	return GeoPoint{Lat: b.BottomRight.Lat, Lon: b.TopLeft.Lon}
}

package rest

import (
	"context"
	"errors"
	"net/http"

	"lintang/geogrid/pkg/geo"
	"lintang/geogrid/pkg/geohash"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type GeoService interface {
	Distance(ctx context.Context, from, to geo.GeoPoint, unit string) (float64, geo.Unit)
	ResolvePrecision(ctx context.Context, box geo.BoundingBox, squares int, unit string,
		mode geohash.AxisMode) (geohash.Tiling, error)
	PrecisionTable(ctx context.Context) []geohash.TableEntry
}

type GeoHandler struct {
	svc             GeoService
	validate        *validator.Validate
	trans           ut.Translator
	defaultAxisMode geohash.AxisMode
}

func NewGeoHandler(svc GeoService, defaultAxisMode geohash.AxisMode) *GeoHandler {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &GeoHandler{
		svc:             svc,
		validate:        validate,
		trans:           trans,
		defaultAxisMode: defaultAxisMode,
	}
}

func GeoRouter(r chi.Router, h *GeoHandler) {
	r.Group(func(r chi.Router) {
		r.Route("/api/geo", func(r chi.Router) {
			r.Post("/distance", h.Distance)
			r.Post("/precision", h.ResolvePrecision)
			r.Get("/precision-table", h.PrecisionTable)
		})
	})
}

// Coord model info
//
//	@Description	coordinate in decimal degrees
type Coord struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

func (c Coord) toGeoPoint() geo.GeoPoint {
	return geo.NewGeoPoint(c.Lat, c.Lon)
}

// DistanceRequest model info
//
//	@Description	request body for great-circle distance
type DistanceRequest struct {
	From *Coord `json:"from" validate:"required"`
	To   *Coord `json:"to" validate:"required"`
	Unit string `json:"unit"`
}

func (s *DistanceRequest) Bind(r *http.Request) error {
	if s.From == nil || s.To == nil {
		return errors.New("from and to are required")
	}
	return nil
}

// DistanceResponse model info
//
//	@Description	response body for great-circle distance
type DistanceResponse struct {
	Distance float64 `json:"distance"`
	Unit     string  `json:"unit"`
}

// Distance
//
//	@Summary		great-circle distance between two points (spherical law of cosines)
//	@Description	unit "K"/"KM" kilometers, "N"/"MN" nautical miles, anything else miles
//	@Tags			geo
//	@Param			body	body	DistanceRequest	true	"request body distance"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/geo/distance [post]
//	@Success		200	{object}	DistanceResponse
//	@Failure		400	{object}	ErrResponse
func (h *GeoHandler) Distance(w http.ResponseWriter, r *http.Request) {
	data := &DistanceRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := h.validate.Struct(*data); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, h.trans)))
		return
	}

	dist, unit := h.svc.Distance(r.Context(), data.From.toGeoPoint(), data.To.toGeoPoint(), data.Unit)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &DistanceResponse{Distance: dist, Unit: unit.String()})
}

// PrecisionRequest model info
//
//	@Description	request body for geohash precision of a bounding box grid
type PrecisionRequest struct {
	TopLeft     *Coord `json:"top_left" validate:"required"`
	BottomRight *Coord `json:"bottom_right" validate:"required"`
	Squares     int    `json:"squares"`
	Unit        string `json:"unit"`
	AxisMode    string `json:"axis_mode"`
}

func (s *PrecisionRequest) Bind(r *http.Request) error {
	if s.TopLeft == nil || s.BottomRight == nil {
		return errors.New("top_left and bottom_right are required")
	}
	return nil
}

// PrecisionResponse model info
//
//	@Description	response body for geohash precision, extents and cell sizes in meters
type PrecisionResponse struct {
	Precision  int     `json:"precision"`
	Squares    int     `json:"squares"`
	XDivisions int     `json:"x_divisions"`
	YDivisions int     `json:"y_divisions"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
	Unit       string  `json:"unit"`
	AxisMode   string  `json:"axis_mode"`
}

func RenderPrecisionResponse(t geohash.Tiling) *PrecisionResponse {
	return &PrecisionResponse{
		Precision:  t.Precision,
		Squares:    t.Squares,
		XDivisions: t.XDivisions,
		YDivisions: t.YDivisions,
		Width:      t.Width,
		Height:     t.Height,
		CellWidth:  t.CellWidth,
		CellHeight: t.CellHeight,
		Unit:       t.Unit.String(),
		AxisMode:   t.AxisMode.String(),
	}
}

// ResolvePrecision
//
//	@Summary		geohash precision for splitting a bounding box into squares cells
//	@Description	squares must be even and at least 4. axis_mode "diagonal" measures both axes along the box diagonal, "edges" measures width and height separately
//	@Tags			geo
//	@Param			body	body	PrecisionRequest	true	"request body precision"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/geo/precision [post]
//	@Success		200	{object}	PrecisionResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *GeoHandler) ResolvePrecision(w http.ResponseWriter, r *http.Request) {
	data := &PrecisionRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := h.validate.Struct(*data); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, h.trans)))
		return
	}

	mode := h.defaultAxisMode
	if data.AxisMode != "" {
		var err error
		mode, err = geohash.ParseAxisMode(data.AxisMode)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
	}

	box := geo.BoundingBox{TopLeft: data.TopLeft.toGeoPoint(), BottomRight: data.BottomRight.toGeoPoint()}
	tiling, err := h.svc.ResolvePrecision(r.Context(), box, data.Squares, data.Unit, mode)
	if err != nil {
		if errors.Is(err, geohash.ErrInvalidArgument) || errors.Is(err, geohash.ErrDegenerateDivision) {
			render.Render(w, r, ErrPrecisionRejected(err))
			return
		}
		render.Render(w, r, ErrInternalServerErrorRend(errors.New("internal server error")))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderPrecisionResponse(tiling))
}

// PrecisionTableRow model info
//
//	@Description	approximate geohash cell size in meters at one precision
type PrecisionTableRow struct {
	Precision int     `json:"precision"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// PrecisionTable
//
//	@Summary	geohash cell size table used for precision lookup
//	@Tags		geo
//	@Produce	application/json
//	@Router		/geo/precision-table [get]
//	@Success	200	{array}	PrecisionTableRow
func (h *GeoHandler) PrecisionTable(w http.ResponseWriter, r *http.Request) {
	table := h.svc.PrecisionTable(r.Context())
	rows := make([]PrecisionTableRow, 0, len(table))
	for i, e := range table {
		rows = append(rows, PrecisionTableRow{Precision: i + 1, Width: e.Width, Height: e.Height})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, rows)
}

package rest

import (
	"errors"
	"net/http"

	"lintang/geogrid/pkg/geohash"

	"github.com/go-chi/render"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// application error codes for rejected precision requests
const (
	AppCodeOddSquares         int64 = 1001
	AppCodeDegenerateDivision int64 = 1002
)

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// ErrPrecisionRejected reports a squares count the resolver refused, with an AppCode telling
// an odd count apart from one too small to split into rows.
func ErrPrecisionRejected(err error) render.Renderer {
	resp := &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid squares.",
		ErrorText:      err.Error(),
	}
	switch {
	case errors.Is(err, geohash.ErrInvalidArgument):
		resp.AppCode = AppCodeOddSquares
	case errors.Is(err, geohash.ErrDegenerateDivision):
		resp.AppCode = AppCodeDegenerateDivision
	}
	return resp
}

// ErrResponse model info
//
//	@Description	error response. code is 1001 for an odd squares count and 1002 for squares below 4
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

package handler

import (
	"math"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errNonFiniteCoordinate = errors.New("coordinate must be a finite number")

// coordinateQuery holds the lat/lon pair shared by the geospatial endpoints.
type coordinateQuery struct {
	Lat float64
	Lon float64
}

// bindCoordinates reads the required lat and lon query parameters.
func bindCoordinates(c echo.Context) (coordinateQuery, error) {
	var q coordinateQuery

	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &q.Lat).
		MustFloat64("lon", &q.Lon).
		BindError()
	if err != nil {
		return q, errors.WithStack(err)
	}

	// strconv accepts NaN and Inf, which would poison every distance comparison.
	if !isFinite(q.Lat) || !isFinite(q.Lon) {
		return q, errNonFiniteCoordinate
	}

	return q, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

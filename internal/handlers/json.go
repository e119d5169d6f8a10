package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StrictJSONSerializer is echo's default serializer with unknown request fields rejected.
type StrictJSONSerializer struct {
	echo.DefaultJSONSerializer
}

// Deserialize decodes the request body into i, failing on fields i does not declare and on
// anything after the first JSON value.
func (StrictJSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(i)
	if ute, ok := err.(*json.UnmarshalTypeError); ok {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("field %s must be of type %v, got %v", ute.Field, ute.Type, ute.Value)).SetInternal(err)
	} else if se, ok := err.(*json.SyntaxError); ok {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("syntax error at offset %d: %v", se.Offset, se.Error())).SetInternal(err)
	} else if err != nil {
		return err
	}

	if _, err := decoder.Token(); err != io.EOF {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must contain a single JSON value")
	}
	return nil
}

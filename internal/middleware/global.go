package middleware

import (
	"errors"
	"net/http"
	"slices"

	"github.com/anonto42/local-food-lovers/backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const bodyLimit = "1M"

// GlobalMiddlewares holds the middleware shared by every route.
type GlobalMiddlewares struct {
	logger zerolog.Logger
}

func NewGlobalMiddlewares(logger zerolog.Logger) *GlobalMiddlewares {
	return &GlobalMiddlewares{logger: logger}
}

// CORS allows the configured origins. Credentials are only allowed for an explicit allowlist.
func (g *GlobalMiddlewares) CORS(origins []string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowCredentials: !slices.Contains(origins, "*"),
	})
}

func (g *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (g *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(bodyLimit)
}

// RequestLogger logs one line per request; the level follows the response status.
func (g *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			status := v.Status
			if v.Error != nil {
				status = errorStatus(v.Error)
			}

			var e *zerolog.Event
			switch {
			case status >= 500:
				e = g.logger.Error().Err(v.Error)
			case status >= 400:
				e = g.logger.Warn()
			default:
				e = g.logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("ip", c.RealIP()).
				Msg("API")
			return nil
		},
	})
}

// GlobalErrorHandler writes every error as an errs.HTTPError body.
func (g *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err)

	if httpErr.Status >= 500 {
		g.logger.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}
	_ = c.JSON(httpErr.Status, httpErr)
}

func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			return errs.NewNotFoundError("Route not found")
		}
		message, ok := echoErr.Message.(string)
		if !ok {
			message = http.StatusText(echoErr.Code)
		}
		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: message,
			Status:  echoErr.Code,
		}
	}

	return errs.NewInternalServerError(http.StatusText(http.StatusInternalServerError), err)
}

func errorStatus(err error) int {
	return toHTTPError(err).Status
}

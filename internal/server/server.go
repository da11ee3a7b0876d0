// Package server exposes the cube operations over HTTP.
//
// Every operation is a GET request whose query parameters are the
// operation parameters:
//
//	GET /create?colors=bogrwy
//	GET /rotate?cube=...&dir=Fu
//	GET /solve?cube=...
//	GET /verify?cube=...
//
// The response body is the result map as JSON.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"

	"github.com/SeamusWaldron/gocube_solver/internal/service"
)

// About is the body of GET /about.
type About struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// New builds the HTTP server around svc. Requests and handler errors are
// logged to logger, the same logger the service writes to; echo's own
// logger only carries its internal messages at loglevel.
func New(svc *service.Service, logger *log.Logger, loglevel, version string) *echo.Echo {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	SetLevel(e, logger, loglevel)

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		e.DefaultHTTPErrorHandler(err, c)
		logger.Error("request failed", "method", c.Request().Method, "path", c.Request().URL.Path, "err", err)
	}

	e.Use(middleware.Recover())
	e.Use(LogHandler(logger))

	e.GET("/about", func(c echo.Context) error {
		return c.JSON(http.StatusOK, About{Name: "gocube-solver", Version: version})
	})
	e.GET("/:op", OperationHandler(svc, "op"))

	return e
}

// OperationHandler dispatches the operation named by path parameter
// paramOp. Unknown operations answer 404 with an error status.
func OperationHandler(svc *service.Service, paramOp string) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := service.Params{}
		for k, v := range c.QueryParams() {
			if len(v) > 0 {
				params[k] = v[0]
			}
		}

		result, ok := svc.Dispatch(c.Param(paramOp), params)
		if !ok {
			return c.JSON(http.StatusNotFound, result)
		}
		return c.JSON(http.StatusOK, result)
	}
}

// LogHandler returns middleware that logs each request and its response
// latency to logger.
func LogHandler(logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			meth := c.Request().Method
			path := c.Request().URL.String()
			begin := time.Now()
			logger.Debug("request", "method", meth, "path", path)

			var err error
			defer func() {
				logger.Info("response",
					"method", meth,
					"path", path,
					"status", c.Response().Status,
					"took", time.Since(begin).Round(time.Microsecond),
					"err", err,
				)
			}()

			err = next(c)
			return err
		}
	}
}

// SetLevel sets the echo logger level by name. Unknown names fall back to
// warn, reported through logger.
func SetLevel(e *echo.Echo, logger *log.Logger, loglevel string) {
	switch strings.ToLower(loglevel) {
	case "debug":
		e.Logger.SetLevel(gommonlog.DEBUG)
	case "info":
		e.Logger.SetLevel(gommonlog.INFO)
	case "warn", "":
		e.Logger.SetLevel(gommonlog.WARN)
	case "error":
		e.Logger.SetLevel(gommonlog.ERROR)
	case "off":
		e.Logger.SetLevel(gommonlog.OFF)
	default:
		e.Logger.SetLevel(gommonlog.WARN)
		logger.Warn("unknown loglevel, falling back to warn", "loglevel", loglevel)
	}
}

// Run serves e on addr until ctx is cancelled, then shuts it down within
// grace.
func Run(ctx context.Context, e *echo.Echo, addr string, grace time.Duration) error {
	errc := make(chan error, 1)
	go func() {
		errc <- e.Start(addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

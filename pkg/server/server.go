package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/stagebook/stagebook/pkg/artists"
	"github.com/stagebook/stagebook/pkg/binder"
	"github.com/stagebook/stagebook/pkg/config"
	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stagebook/stagebook/pkg/shows"
	"github.com/stagebook/stagebook/pkg/testutils"
	"github.com/stagebook/stagebook/pkg/venues"
	"github.com/stagebook/stagebook/pkg/version"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e, err := newEcho(cfg, db, time.Now)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func newEcho(cfg *config.Config, db *bun.DB, nowFn func() time.Time) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b
	e.JSONSerializer = &jsonSerializer{}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)
	e.GET("/", index)

	venues.RegisterRoutesWithGroup(e.Group("/venues"), db, nowFn)
	artists.RegisterRoutesWithGroup(e.Group("/artists"), db, nowFn)
	shows.RegisterRoutesWithGroup(e.Group("/shows"), db, nowFn)

	if cfg.Environment == "test" {
		testutils.RegisterRoutes(e, db)
	}

	e.RouteNotFound("/*", notFoundHandler)
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	return e, nil
}

func index(c echo.Context) error {
	return errors.WithStack(c.JSON(http.StatusOK, map[string]string{
		"name":    "stagebook",
		"version": version.Version,
	}))
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}

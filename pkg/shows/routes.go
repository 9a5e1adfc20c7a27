package shows

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers show routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, nowFn func() time.Time) {
	h := &handler{
		showService: NewService(db).WithClock(nowFn),
	}

	g.GET("", h.list)
	g.GET("/create", h.createForm)
	g.POST("/create", h.create)
}

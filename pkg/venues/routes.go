package venues

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers venue routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, nowFn func() time.Time) {
	h := &handler{
		venueService: NewService(db).WithClock(nowFn),
	}

	g.GET("", h.list)
	g.GET("/search", h.search)
	g.POST("/search", h.search)
	g.GET("/create", h.createForm)
	g.POST("/create", h.create)
	g.GET("/:id", h.retrieve)
	g.DELETE("/:id", h.delete)
	g.GET("/:id/edit", h.editForm)
	g.POST("/:id/edit", h.edit)
}

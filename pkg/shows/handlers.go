package shows

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/stagebook/stagebook/pkg/forms"
	"github.com/stagebook/stagebook/pkg/notice"
)

const subject = "Show"

type handler struct {
	showService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	listings, err := h.showService.ListShows(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, listings))
}

func (h *handler) createForm(c echo.Context) error {
	form := forms.ShowForm("/shows/create", h.showService.Now())
	return errors.WithStack(c.JSON(http.StatusOK, form))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEchoContext(c)

	params := CreateShowPayload{}
	if err := c.Bind(&params); err != nil {
		log.Err(err).Warn("invalid show submission")
		return notice.Render(c, notice.Failure(notice.NotListed(subject)))
	}

	show, err := params.toModel()
	if err != nil {
		log.Err(err).Warn("invalid show start time")
		return notice.Render(c, notice.Failure(notice.NotListed(subject)))
	}

	if err := h.showService.CreateShow(ctx, show); err != nil {
		log.Err(err).Warn("unable to create show")
		return notice.Render(c, notice.Failure(notice.NotListed(subject)))
	}

	return notice.Render(c, notice.Success(notice.Listed(subject), show.ID))
}

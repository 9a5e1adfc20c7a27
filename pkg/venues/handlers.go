package venues

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/stagebook/stagebook/pkg/binder"
	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stagebook/stagebook/pkg/forms"
	"github.com/stagebook/stagebook/pkg/models"
	"github.com/stagebook/stagebook/pkg/notice"
)

type handler struct {
	venueService *Service
}

func subject(name string) string {
	if name == "" {
		return "Venue"
	}
	return "Venue " + name
}

func venueID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errcodes.NotFound("Venue")
	}
	return id, nil
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	groups, err := h.venueService.ListVenueGroups(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, groups))
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Request().Context()

	// A search with no term lists every venue.
	c.Set(binder.DisallowEmptyBody, false)
	params := SearchPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.venueService.SearchVenues(ctx, params.SearchTerm)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, result))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := venueID(c)
	if err != nil {
		return err
	}

	detail, err := h.venueService.RetrieveVenueDetail(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, detail))
}

func (h *handler) createForm(c echo.Context) error {
	return errors.WithStack(c.JSON(http.StatusOK, forms.VenueForm("/venues/create")))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEchoContext(c)

	params := VenuePayload{}
	if err := c.Bind(&params); err != nil {
		log.Err(err).Warn("invalid venue submission")
		return notice.Render(c, notice.Failure(notice.NotListed(subject(params.Name))))
	}

	venue := &models.Venue{}
	if err := params.apply(venue); err != nil {
		log.Err(err).Warn("invalid venue submission")
		return notice.Render(c, notice.Failure(notice.NotListed(subject(params.Name))))
	}

	if err := h.venueService.CreateVenue(ctx, venue); err != nil {
		log.Err(err).Warn("unable to create venue")
		return notice.Render(c, notice.Failure(notice.NotListed(subject(params.Name))))
	}

	return notice.Render(c, notice.Success(notice.Listed(subject(venue.Name)), venue.ID))
}

func (h *handler) editForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := venueID(c)
	if err != nil {
		return err
	}

	venue, err := h.venueService.RetrieveVenue(ctx, RetrieveVenueOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	values := venue.ToMap()
	values["seeking_talent"] = forms.SeekingLabel(venue.SeekingTalent)
	form := forms.VenueForm(fmt.Sprintf("/venues/%d/edit", id)).WithValues(values)

	return errors.WithStack(c.JSON(http.StatusOK, form))
}

func (h *handler) edit(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEchoContext(c)
	id, err := venueID(c)
	if err != nil {
		return err
	}

	venue, err := h.venueService.RetrieveVenue(ctx, RetrieveVenueOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	params := VenuePayload{}
	if err := c.Bind(&params); err != nil {
		log.Err(err).Warn("invalid venue submission")
		return notice.Render(c, notice.Failure(notice.NotUpdated(subject(venue.Name))))
	}

	if err := params.apply(venue); err != nil {
		log.Err(err).Warn("invalid venue submission")
		return notice.Render(c, notice.Failure(notice.NotUpdated(subject(params.Name))))
	}

	err = h.venueService.UpdateVenue(ctx, venue, UpdateVenueOptions{})
	if errors.Is(err, errcodes.NotFound("Venue")) {
		return errors.WithStack(err)
	}
	if err != nil {
		log.Err(err).Warn("unable to update venue")
		return notice.Render(c, notice.Failure(notice.NotUpdated(subject(params.Name))))
	}

	return notice.Render(c, notice.Success(notice.Updated(subject(venue.Name)), venue.ID))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := venueID(c)
	if err != nil {
		return err
	}

	return errors.WithStack(h.venueService.DeleteVenue(ctx, id))
}

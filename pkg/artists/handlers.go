package artists

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
	artistService *Service
}

func subject(name string) string {
	if name == "" {
		return "Artist"
	}
	return "Artist " + name
}

func artistID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errcodes.NotFound("Artist")
	}
	return id, nil
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := h.artistService.ListArtists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, entries))
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Request().Context()

	// A search with no term lists every artist.
	c.Set(binder.DisallowEmptyBody, false)
	params := SearchPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.artistService.SearchArtists(ctx, params.SearchTerm)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, result))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := artistID(c)
	if err != nil {
		return err
	}

	detail, err := h.artistService.RetrieveArtistDetail(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, detail))
}

func (h *handler) createForm(c echo.Context) error {
	return errors.WithStack(c.JSON(http.StatusOK, forms.ArtistForm("/artists/create")))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEchoContext(c)

	params := ArtistPayload{}
	if err := c.Bind(&params); err != nil {
		log.Err(err).Warn("invalid artist submission")
		return notice.Render(c, notice.Failure(notice.NotListed(subject(params.Name))))
	}

	artist := &models.Artist{}
	if err := params.apply(artist); err != nil {
		log.Err(err).Warn("invalid artist submission")
		return notice.Render(c, notice.Failure(notice.NotListed(subject(params.Name))))
	}

	if err := h.artistService.CreateArtist(ctx, artist); err != nil {
		log.Err(err).Warn("unable to create artist")
		return notice.Render(c, notice.Failure(notice.NotListed(subject(params.Name))))
	}

	return notice.Render(c, notice.Success(notice.Listed(subject(artist.Name)), artist.ID))
}

func (h *handler) editForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := artistID(c)
	if err != nil {
		return err
	}

	artist, err := h.artistService.RetrieveArtist(ctx, RetrieveArtistOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	values := artist.ToMap()
	values["seeking_venue"] = forms.SeekingLabel(artist.SeekingVenue)
	form := forms.ArtistForm(fmt.Sprintf("/artists/%d/edit", id)).WithValues(values)

	return errors.WithStack(c.JSON(http.StatusOK, form))
}

func (h *handler) edit(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEchoContext(c)
	id, err := artistID(c)
	if err != nil {
		return err
	}

	artist, err := h.artistService.RetrieveArtist(ctx, RetrieveArtistOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	params := ArtistPayload{}
	if err := c.Bind(&params); err != nil {
		log.Err(err).Warn("invalid artist submission")
		return notice.Render(c, notice.Failure(notice.NotUpdated(subject(artist.Name))))
	}

	if err := params.apply(artist); err != nil {
		log.Err(err).Warn("invalid artist submission")
		return notice.Render(c, notice.Failure(notice.NotUpdated(subject(params.Name))))
	}

	err = h.artistService.UpdateArtist(ctx, artist, UpdateArtistOptions{})
	if errors.Is(err, errcodes.NotFound("Artist")) {
		return errors.WithStack(err)
	}
	if err != nil {
		log.Err(err).Warn("unable to update artist")
		return notice.Render(c, notice.Failure(notice.NotUpdated(subject(params.Name))))
	}

	return notice.Render(c, notice.Success(notice.Updated(subject(artist.Name)), artist.ID))
}

package testutils

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stagebook/stagebook/pkg/models"
	"github.com/uptrace/bun"
)

type handler struct {
	db *bun.DB
}

type deleteAllResponse struct {
	Shows   int64 `json:"shows"`
	Artists int64 `json:"artists"`
	Venues  int64 `json:"venues"`
}

// deleteAll removes every show, artist and venue so a test run starts from an
// empty directory.
// DELETE /test/data.
func (h *handler) deleteAll(c echo.Context) error {
	ctx := c.Request().Context()
	resp := deleteAllResponse{}

	err := h.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// Shows first since they reference both other tables.
		res, err := tx.NewDelete().Model((*models.Show)(nil)).Where("1 = 1").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete shows")
		}
		resp.Shows, _ = res.RowsAffected()

		res, err = tx.NewDelete().Model((*models.Artist)(nil)).Where("1 = 1").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete artists")
		}
		resp.Artists, _ = res.RowsAffected()

		res, err = tx.NewDelete().Model((*models.Venue)(nil)).Where("1 = 1").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete venues")
		}
		resp.Venues, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

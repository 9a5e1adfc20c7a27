package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewAddColumn().
			Table("venues").
			ColumnExpr("genres VARCHAR(120)").
			Exec(ctx)
		return errors.WithStack(err)
	}

	down := func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropColumn().
			Table("venues").
			Column("genres").
			Exec(ctx)
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}

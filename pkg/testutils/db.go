package testutils

import (
	"context"
	"testing"

	"github.com/stagebook/stagebook/pkg/config"
	"github.com/stagebook/stagebook/pkg/database"
	"github.com/stagebook/stagebook/pkg/migrations"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// NewDB opens a fresh in-memory database with every migration applied. It's
// closed when the test finishes.
func NewDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := database.New(config.NewForTest())
	require.NoError(t, err)

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

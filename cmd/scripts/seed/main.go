package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/robinjoseph08/golib/logger"
	"github.com/stagebook/stagebook/pkg/config"
	"github.com/stagebook/stagebook/pkg/database"
	"github.com/stagebook/stagebook/pkg/migrations"
	"github.com/stagebook/stagebook/pkg/seed"
)

func main() {
	log := logger.New()

	var opts struct {
		Verbose bool `short:"v" long:"verbose" description:"Log every query that runs"`
		Migrate bool `short:"m" long:"migrate" description:"Bring the schema up to date before seeding"`
	}

	_, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Err(err).Fatal("database error")
	}
	defer db.Close()

	ctx := log.WithContext(context.Background())
	if opts.Verbose {
		ctx = database.WithLogging(ctx)
	}

	if opts.Migrate {
		if _, err := migrations.BringUpToDate(ctx, db); err != nil {
			log.Err(err).Fatal("migrations error")
		}
	}

	summary, err := seed.Load(ctx, db, seed.Sample(), time.Now())
	if err != nil {
		log.Err(err).Fatal("seed error")
	}
	fmt.Printf("Seeded %d venues, %d artists and %d shows\n", summary.Venues, summary.Artists, summary.Shows)
}

package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/config"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/jobs"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/domain"
	projectrepo "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/repository"
	statusrepo "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/status/repository"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/catalog"
)

const commandTimeout = 2 * time.Minute

func RunMigrate(cfg *config.Config) error {
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	logrus.Info("Schema is up to date")
	return nil
}

// RunCleanupStatus deletes status checks older than the given number of days,
// defaulting to the configured retention.
func RunCleanupStatus(cfg *config.Config, args []string) error {
	days := cfg.Status.RetentionDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("days must be a positive integer, got %q", args[0])
		}
		days = n
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	_, err = jobs.RunStatusCleanup(ctx, statusrepo.NewCheckRepository(rdb), days)
	return err
}

func RunStats(cfg *config.Config, out io.Writer) error {
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	st, err := projectStats(ctx, db)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

func projectStats(ctx context.Context, db *sql.DB) (*domain.Stats, error) {
	st, err := projectrepo.NewProjectRepository(db).Stats(ctx)
	if postgres.IsUndefinedTable(err) {
		return nil, fmt.Errorf("projects table is missing, run `worker migrate` first: %w", err)
	}
	return st, err
}

// RunTemplates prints the builtin catalog as a table.
func RunTemplates(out io.Writer) error {
	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tTEMPLATE\tTYPE\tCOMPLEXITY\tNAME")
	for _, lang := range cat.ListLanguages() {
		tpls, err := cat.ListTemplates(lang.ID)
		if err != nil {
			return err
		}
		for _, t := range tpls {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", lang.ID, t.ID, t.Type, t.Complexity, t.Name)
		}
	}
	return tw.Flush()
}

// Command migrate applies the SQL migrations in ./migrations with the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"salon-loyalty/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := apply(ctx, *bin, *dir, cfg.DB.BuildDSN()); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func apply(ctx context.Context, bin, dir, dsn string) error {
	wd, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), bin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: dsn,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		slog.Info("applied migration", "name", f.Name, "version", f.Version)
	}
	slog.Info("database is up to date", "current", res.Current, "target", res.Target)
	return nil
}

package main

import (
	"context"
	"log/slog"
	"os"

	"shareit/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type migrateConfig struct {
	Dir       string `envconfig:"MIGRATE_DIR" default:"migrations"`
	AtlasPath string `envconfig:"ATLAS_BIN" default:"atlas"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := run(context.Background(), logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	_ = godotenv.Load()

	var mc migrateConfig
	if err := envconfig.Process("", &mc); err != nil {
		return err
	}
	var db config.DBConfig
	if err := envconfig.Process("", &db); err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(mc.Dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), mc.AtlasPath)
	if err != nil {
		return err
	}

	// the checksum file is regenerated so hand-edited migrations still apply
	if err := client.MigrateHash(ctx, &atlasexec.MigrateHashParams{DirURL: "file://migrations"}); err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    db.BuildDSN(),
		DirURL: "file://migrations",
	})
	if err != nil {
		return err
	}

	logger.Info("migrations applied", "count", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}

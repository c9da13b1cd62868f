// Command migrate applies the versioned SQL files under migrations/ with the
// atlas CLI. It needs only the DB_* variables, not the full server config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"groomer-crm/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	errs "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files and atlas.sum")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(*dir, *bin, *dryRun, logger); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(dir, bin string, dryRun bool, logger *slog.Logger) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(err, "failed to load .env")
	}

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return errs.Wrap(err, "failed to read database config")
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return errs.Wrap(err, "failed to prepare migration directory")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return errs.Wrap(err, "failed to create atlas client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    atlasURL(dbCfg),
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate apply")
	}

	for _, applied := range res.Applied {
		logger.Info("マイグレーション実行完了", "version", applied.Version, "name", applied.Name)
	}
	logger.Info("データベースは最新です", "current", res.Current, "target", res.Target, "dry_run", dryRun)
	return nil
}

func atlasURL(c config.DBConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

package root

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/config"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/storage"
)

// loadConfig resolves the session config and wires logging to match it.
// Logging goes to stderr so it never interleaves with the TUI or payload dumps.
func loadConfig() config.Config {
	cfg := config.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	return cfg
}

func openSnapshots(ctx context.Context, cfg config.Config) (*storage.SnapshotRepo, func(), error) {
	path, err := storage.ResolveDBPath(cfg.SnapshotDB)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return storage.NewSnapshotRepo(db), cleanup, nil
}

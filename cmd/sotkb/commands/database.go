package commands

import (
	"context"

	"github.com/teranos/sotkb/am"
	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/factstore"
	"github.com/teranos/sotkb/kb"
	"github.com/teranos/sotkb/logger"
)

// dbPathFlag overrides database.path for a single invocation
var dbPathFlag string

// loadConfig loads the configuration once per command.
func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// openStore opens and migrates the fact store at --db or database.path.
func openStore(cfg *am.Config) (*factstore.Store, error) {
	path := dbPathFlag
	if path == "" {
		path = cfg.GetDatabasePath()
	}

	store, err := factstore.Open(path,
		factstore.WithLogger(logger.Named("factstore")),
		factstore.WithMetrics(factstore.NewMetrics(nil)),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open fact store at %s", path)
	}
	return store, nil
}

// openKnowledgeBase opens the store and imports the configured sources plus
// any --data sources before the caller queries.
func openKnowledgeBase(ctx context.Context, data []string) (*kb.KnowledgeBase, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := store.Close(); err != nil {
			logger.Logger.Warnw("Failed to close fact store", logger.FieldError, err)
		}
	}

	base := kb.New(store, kb.WithLogger(logger.Named("kb")))
	sources := append(append([]string(nil), cfg.Import.Sources...), data...)
	for _, source := range sources {
		if _, err := base.ImportData(ctx, source); err != nil {
			closer()
			return nil, nil, errors.Wrapf(err, "failed to import %s", source)
		}
	}
	return base, closer, nil
}

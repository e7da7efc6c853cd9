package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"typeprompt/internal/application"
	"typeprompt/internal/catalog"
	"typeprompt/internal/config"
	"typeprompt/internal/infrastructure/database"
	"typeprompt/internal/infrastructure/promptfile"
	"typeprompt/internal/infrastructure/sqlite"
	"typeprompt/internal/infrastructure/typeregistry"
	"typeprompt/internal/ports/output"
	"typeprompt/pkg/tz"
)

// app wires ports: output adapters -> application (use cases) -> commands.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	tr       output.T
	out      io.Writer
	loc      *time.Location
	registry *typeregistry.Registry
	svc      *application.TypePromptService
	closers  []func()
}

func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger, tr output.T, out io.Writer) (*app, error) {
	loc, err := tz.Load(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	registry := typeregistry.New()
	if err := catalog.Register(registry); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, tr: tr, out: out, loc: loc, registry: registry}

	var repo output.TypePromptRepository
	switch cfg.Store {
	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { db.Close() })
		repo = sqlite.NewTypePromptRepository(db)
	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		repo = database.NewTypePromptRepository(pool)
	default:
		return nil, fmt.Errorf("unsupported store %q", cfg.Store)
	}

	a.svc = application.NewTypePromptService(repo, registry, promptfile.Codec{}, application.WithLogger(log))
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// say prints a catalogue message in the configured UI locale.
func (a *app) say(key string, data map[string]any) {
	fmt.Fprintln(a.out, a.tr.T(a.cfg.UILocale, key, data))
}

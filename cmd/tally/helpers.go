package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/tally/internal/category"
	"github.com/Veraticus/tally/internal/config"
	"github.com/Veraticus/tally/internal/controller"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/service"
	"github.com/Veraticus/tally/internal/storage"
)

// categoryBadge picks the glyph shown next to a category: its icon when set,
// otherwise the first rune of its name.
func categoryBadge(cat model.Category) string {
	if cat.Icon != "" {
		return cat.Icon
	}
	if cat.Name == "" {
		return ""
	}
	return string([]rune(cat.Name)[0])
}

// initStore initializes the store with proper path expansion and migrations.
func initStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/tally/tally.db"
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// app bundles the wired core for a single command invocation.
type app struct {
	ctrl     *controller.Controller
	registry *category.Registry
	cleanup  func()
}

// initApp wires store, registry, and controller and performs the initial
// load. The cleanup flushes pending writes and closes the store; commands
// defer it.
func initApp(ctx context.Context) (*app, error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	registry := category.NewRegistry()
	ctrl := controller.New(store, registry)
	if err := ctrl.Initialize(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return &app{
		ctrl:     ctrl,
		registry: registry,
		cleanup: func() {
			ctrl.Flush()
			_ = store.Close()
		},
	}, nil
}

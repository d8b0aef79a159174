package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/lessonbook/internal/config"
	"github.com/jask/lessonbook/internal/lesson"
	"github.com/jask/lessonbook/internal/logger"
)

func TestCatalogSourceSelection(t *testing.T) {
	ctx := context.Background()
	lg := logger.Nop()

	src, closeSrc, err := catalogSource(ctx, config.Config{Catalog: config.CatalogConfig{Source: "embedded"}}, lg)
	require.NoError(t, err)
	closeSrc()
	require.IsType(t, lesson.EmbeddedSource{}, src)

	_, _, err = catalogSource(ctx, config.Config{Catalog: config.CatalogConfig{Source: "file"}}, lg)
	require.ErrorIs(t, err, lesson.ErrUnknownSource)

	_, _, err = catalogSource(ctx, config.Config{Catalog: config.CatalogConfig{Source: "http"}}, lg)
	require.ErrorIs(t, err, lesson.ErrUnknownSource)
}

func TestSQLiteSourceMatchesEmbedded(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		Catalog:  config.CatalogConfig{Source: config.SourceSQLite},
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "data", "lessons.db")},
	}

	src, closeSrc, err := catalogSource(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(closeSrc)

	fromDB, err := lesson.LoadCatalog(ctx, src)
	require.NoError(t, err)
	embedded, err := lesson.LoadCatalog(ctx, lesson.EmbeddedSource{})
	require.NoError(t, err)
	require.Equal(t, embedded.All(), fromDB.All())
}

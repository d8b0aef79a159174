package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lessonbook/internal/config"
	"github.com/jask/lessonbook/internal/database"
	"github.com/jask/lessonbook/internal/database/repository"
	"github.com/jask/lessonbook/internal/lesson"
	"github.com/jask/lessonbook/internal/logger"
	"github.com/jask/lessonbook/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.Log.Mode, cfg.Log.Path)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	src, closeSrc, err := catalogSource(ctx, cfg, lg)
	if err != nil {
		log.Fatalf("catalog source: %v", err)
	}
	defer closeSrc()

	catalog, err := lesson.LoadCatalog(ctx, src)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	lg.Info("catalog loaded", "source", cfg.Catalog.Source, "lessons", catalog.Len())

	start, err := lesson.ParseAge(cfg.UI.StartAge)
	if err != nil {
		lg.Warn("invalid start age, using youngest tier", "start_age", cfg.UI.StartAge, "error", err)
		start = lesson.DefaultAge
	}

	p := tea.NewProgram(tui.New(catalog, start, lg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		lg.Error("program exited", "error", err)
		fmt.Printf("error: %v\n", err)
	}
}

// catalogSource picks the static data source named in cfg. The returned
// func releases anything the source holds open.
func catalogSource(ctx context.Context, cfg config.Config, lg *logger.Logger) (lesson.Source, func(), error) {
	noop := func() {}
	switch strings.ToLower(strings.TrimSpace(cfg.Catalog.Source)) {
	case "", config.SourceEmbedded:
		return lesson.EmbeddedSource{}, noop, nil
	case config.SourceFile:
		if strings.TrimSpace(cfg.Catalog.Path) == "" {
			return nil, noop, fmt.Errorf("%w: catalog.path is required for the file source", lesson.ErrUnknownSource)
		}
		return lesson.FileSource{Path: cfg.Catalog.Path}, noop, nil
	case config.SourceSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			return nil, noop, fmt.Errorf("mkdir db dir: %w", err)
		}
		if err := database.RunMigrations(cfg.Database.Path); err != nil {
			return nil, noop, fmt.Errorf("migrate: %w", err)
		}
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open db: %w", err)
		}
		seeded, err := database.SeedLessons(ctx, db, lesson.EmbeddedSource{})
		if err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("seed lessons: %w", err)
		}
		if seeded > 0 {
			lg.Info("seeded lesson database", "path", cfg.Database.Path, "lessons", seeded)
		}
		return repository.NewLessonRepo(db), func() { _ = db.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", lesson.ErrUnknownSource, cfg.Catalog.Source)
	}
}

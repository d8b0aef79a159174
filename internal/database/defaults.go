package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/lessonbook/internal/database/repository"
	"github.com/jask/lessonbook/internal/lesson"
)

// SeedLessons fills an empty lesson table from src. It is idempotent and safe
// to run on every startup: a database that already holds lessons is left as is.
func SeedLessons(ctx context.Context, db *sql.DB, src lesson.Source) (int, error) {
	n, err := repository.NewLessonRepo(db).Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	lessons, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed source: %w", err)
	}
	// ids are filled in the same way the in-memory catalog does it
	lessons = lesson.NewCatalog(lessons).All()
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewLessonRepo(tx)
		for i, l := range lessons {
			if err := repo.Upsert(ctx, i, l); err != nil {
				return fmt.Errorf("seed lesson %s: %w", l.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(lessons), nil
}

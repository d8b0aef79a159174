package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/lessonbook/internal/database/repository"
	"github.com/jask/lessonbook/internal/lesson"
)

func TestSeedAndListLessons(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "lessons.db")
	require.NoError(t, RunMigrations(dbPath))
	require.NoError(t, RunMigrations(dbPath), "second run is a no-op")

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	seeded, err := SeedLessons(ctx, db, lesson.EmbeddedSource{})
	require.NoError(t, err)
	require.Positive(t, seeded)

	again, err := SeedLessons(ctx, db, lesson.EmbeddedSource{})
	require.NoError(t, err)
	require.Zero(t, again)

	want, err := lesson.LoadCatalog(ctx, lesson.EmbeddedSource{})
	require.NoError(t, err)

	repo := repository.NewLessonRepo(db)
	got, err := lesson.LoadCatalog(ctx, repo)
	require.NoError(t, err)
	require.Equal(t, want.All(), got.All())
	require.Equal(t, want.Filter(3), got.Filter(3))
}

func TestUpsertReplacesSteps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "lessons.db")
	require.NoError(t, RunMigrations(dbPath))
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewLessonRepo(db)
	l := lesson.Lesson{
		ID: "x", Age: 5, Category: "Unknown", Title: "Shop",
		Steps: []lesson.Step{{Title: "a", Instructions: []string{"one"}}, {Title: "b"}},
	}
	require.NoError(t, repo.Upsert(ctx, 0, l))

	l.Steps = l.Steps[:1]
	require.NoError(t, repo.Upsert(ctx, 0, l))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Steps, 1)
	require.Equal(t, []string{"one"}, list[0].Steps[0].Instructions)
	require.Nil(t, list[0].Materials)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

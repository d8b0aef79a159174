package repository

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// lessonRow mirrors the lessons table. List columns hold JSON arrays.
type lessonRow struct {
	ID              string
	Position        int
	Age             int
	Category        string
	Month           string
	Week            int
	Title           string
	Description     string
	Duration        int
	Goal            string
	Materials       string
	Adaptations     string
	ExpectedResults string
}

type stepRow struct {
	LessonID     string
	Position     int
	Title        string
	Description  string
	Duration     int
	Instructions string
}

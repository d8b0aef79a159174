package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jask/lessonbook/internal/lesson"
)

// LessonRepo reads and seeds the lesson catalog. The viewer only ever reads.
type LessonRepo struct {
	db DBTX
}

func NewLessonRepo(db DBTX) *LessonRepo {
	return &LessonRepo{db: db}
}

// Load implements lesson.Source.
func (r *LessonRepo) Load(ctx context.Context) ([]lesson.Lesson, error) {
	return r.List(ctx)
}

func (r *LessonRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lessons`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count lessons: %w", err)
	}
	return n, nil
}

// Upsert writes l at catalog position pos, replacing its steps.
func (r *LessonRepo) Upsert(ctx context.Context, pos int, l lesson.Lesson) error {
	materials, err := encodeList(l.Materials)
	if err != nil {
		return err
	}
	adaptations, err := encodeList(l.Adaptations)
	if err != nil {
		return err
	}
	results, err := encodeList(l.ExpectedResults)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO lessons(id, position, age, category, month, week, title, description, duration, goal, materials, adaptations, expected_results)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 position=excluded.position,
	 age=excluded.age,
	 category=excluded.category,
	 month=excluded.month,
	 week=excluded.week,
	 title=excluded.title,
	 description=excluded.description,
	 duration=excluded.duration,
	 goal=excluded.goal,
	 materials=excluded.materials,
	 adaptations=excluded.adaptations,
	 expected_results=excluded.expected_results;
	`, l.ID, pos, int(l.Age), l.Category, l.Month, l.Week, l.Title, l.Description, l.Duration, l.Goal, materials, adaptations, results)
	if err != nil {
		return fmt.Errorf("upsert lesson: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM lesson_steps WHERE lesson_id = ?`, l.ID); err != nil {
		return fmt.Errorf("clear steps: %w", err)
	}
	for i, s := range l.Steps {
		instructions, err := encodeList(s.Instructions)
		if err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx, `
		INSERT INTO lesson_steps(lesson_id, position, title, description, duration, instructions)
		VALUES (?, ?, ?, ?, ?, ?)`, l.ID, i, s.Title, s.Description, s.Duration, instructions)
		if err != nil {
			return fmt.Errorf("insert step %d: %w", i, err)
		}
	}
	return nil
}

// List returns every lesson in catalog order with its steps.
func (r *LessonRepo) List(ctx context.Context) ([]lesson.Lesson, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, position, age, category, month, week, title, description, duration, goal, materials, adaptations, expected_results
	FROM lessons ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var out []lesson.Lesson
	index := map[string]int{}
	for rows.Next() {
		var lr lessonRow
		if err := rows.Scan(&lr.ID, &lr.Position, &lr.Age, &lr.Category, &lr.Month, &lr.Week, &lr.Title,
			&lr.Description, &lr.Duration, &lr.Goal, &lr.Materials, &lr.Adaptations, &lr.ExpectedResults); err != nil {
			return nil, err
		}
		l, err := lr.toLesson()
		if err != nil {
			return nil, err
		}
		index[l.ID] = len(out)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	steps, err := r.db.QueryContext(ctx, `
	SELECT lesson_id, position, title, description, duration, instructions
	FROM lesson_steps ORDER BY lesson_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	defer steps.Close()
	for steps.Next() {
		var sr stepRow
		if err := steps.Scan(&sr.LessonID, &sr.Position, &sr.Title, &sr.Description, &sr.Duration, &sr.Instructions); err != nil {
			return nil, err
		}
		i, ok := index[sr.LessonID]
		if !ok {
			continue
		}
		instructions, err := decodeList(sr.Instructions)
		if err != nil {
			return nil, fmt.Errorf("step %s/%d: %w", sr.LessonID, sr.Position, err)
		}
		out[i].Steps = append(out[i].Steps, lesson.Step{
			Title:        sr.Title,
			Description:  sr.Description,
			Duration:     sr.Duration,
			Instructions: instructions,
		})
	}
	return out, steps.Err()
}

func (lr lessonRow) toLesson() (lesson.Lesson, error) {
	l := lesson.Lesson{
		ID:          lr.ID,
		Age:         lesson.Age(lr.Age),
		Category:    lr.Category,
		Month:       lr.Month,
		Week:        lr.Week,
		Title:       lr.Title,
		Description: lr.Description,
		Duration:    lr.Duration,
		Goal:        lr.Goal,
	}
	var err error
	if l.Materials, err = decodeList(lr.Materials); err != nil {
		return l, fmt.Errorf("lesson %s materials: %w", lr.ID, err)
	}
	if l.Adaptations, err = decodeList(lr.Adaptations); err != nil {
		return l, fmt.Errorf("lesson %s adaptations: %w", lr.ID, err)
	}
	if l.ExpectedResults, err = decodeList(lr.ExpectedResults); err != nil {
		return l, fmt.Errorf("lesson %s expected results: %w", lr.ID, err)
	}
	return l, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

// decodeList returns nil for an empty array so that optional lists read back
// the way they were written.
func decodeList(raw string) ([]string, error) {
	var out []string
	if raw == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

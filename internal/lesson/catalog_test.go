package lesson

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(lessons []Lesson) []string {
	out := make([]string, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	c := NewCatalog([]Lesson{
		{ID: "A", Age: 3},
		{ID: "B", Age: 4},
		{ID: "C", Age: 3},
	})

	require.Equal(t, []string{"A", "C"}, ids(c.Filter(3)))
	require.Equal(t, []string{"B"}, ids(c.Filter(4)))

	empty := c.Filter(5)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestFilterMatchesExactlyOneTier(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog(context.Background(), EmbeddedSource{})
	require.NoError(t, err)
	require.Positive(t, c.Len())

	total := 0
	for _, age := range Ages {
		got := c.Filter(age)
		for _, l := range got {
			require.Equal(t, age, l.Age, "lesson %s leaked into tier %d", l.ID, age)
		}
		total += len(got)
	}
	require.Equal(t, c.Len(), total)
}

func TestNewCatalogAssignsStableIDs(t *testing.T) {
	t.Parallel()

	in := []Lesson{{Title: "Pass the ball", Age: 4}, {ID: "keep", Title: "Other", Age: 3}}
	a := NewCatalog(in)
	b := NewCatalog(in)

	require.NotEmpty(t, a.All()[0].ID)
	require.Equal(t, a.All()[0].ID, b.All()[0].ID)
	require.Equal(t, "keep", a.All()[1].ID)
	require.Empty(t, in[0].ID, "input must not be mutated")

	got, ok := a.Get("keep")
	require.True(t, ok)
	require.Equal(t, "Other", got.Title)
	_, ok = a.Get("missing")
	require.False(t, ok)
}

func TestParseAge(t *testing.T) {
	t.Parallel()

	a, err := ParseAge(5)
	require.NoError(t, err)
	require.Equal(t, Age(5), a)

	_, err = ParseAge(9)
	require.ErrorIs(t, err, ErrUnknownAge)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	lessons := []Lesson{
		{ID: "1", Title: "Happy and sad faces", Category: CategoryEmotions},
		{ID: "2", Title: "Playdough pancakes", Category: CategoryMotor},
		{ID: "3", Title: "Sorting by colour", Category: CategoryCognition},
	}

	require.Equal(t, []string{"2"}, ids(Search(lessons, "pancake")))
	require.Equal(t, []string{"3"}, ids(Search(lessons, "colur")), "one typo still matches")
	require.Equal(t, []string{"1"}, ids(Search(lessons, "emotions")))
	require.Empty(t, Search(lessons, "xylophone"))
	require.Equal(t, []string{"1", "2", "3"}, ids(Search(lessons, "  ")))
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "lessons.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`lessons:
  - id: y1
    age: 3
    category: Emotions
    title: Faces
    steps:
      - title: Greeting
        duration: 2
`), 0o600))
	jsonPath := filepath.Join(dir, "lessons.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"lessons":[{"id":"j1","age":4,"category":"Unknown","title":"Shop","steps":[{"title":"Set up","instructions":["a","b"]}]}]}`), 0o600))

	ctx := context.Background()
	got, err := FileSource{Path: yamlPath}.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "y1", got[0].ID)
	require.False(t, got[0].Steps[0].HasInstructions())

	got, err = FileSource{Path: jsonPath}.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, Age(4), got[0].Age)
	require.Equal(t, []string{"a", "b"}, got[0].Steps[0].Instructions)

	_, err = FileSource{Path: filepath.Join(dir, "lessons.csv")}.Load(ctx)
	require.Error(t, err)

	txt := filepath.Join(dir, "lessons.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))
	_, err = FileSource{Path: txt}.Load(ctx)
	require.ErrorIs(t, err, ErrUnknownSource)
}

func TestEmbeddedSourceHonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := EmbeddedSource{}.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

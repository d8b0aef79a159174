package viewer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/lessonbook/internal/lesson"
)

func sampleCatalog() *lesson.Catalog {
	return lesson.NewCatalog([]lesson.Lesson{
		{ID: "A", Age: 3, Category: lesson.CategoryEmotions, Title: "Faces", Steps: []lesson.Step{{Title: "one"}, {Title: "two"}, {Title: "three"}}},
		{ID: "B", Age: 4, Category: lesson.CategoryCommunication, Title: "Song"},
		{ID: "C", Age: 3, Category: "Unknown", Title: "Shop", Steps: []lesson.Step{{Title: "only"}}},
	})
}

func cardIDs(ls []lesson.Lesson) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestSelectAgeFiltersLessons(t *testing.T) {
	c := NewCatalog(sampleCatalog(), lesson.DefaultAge)
	require.Equal(t, lesson.Age(3), c.Age())
	require.Equal(t, []string{"A", "C"}, cardIDs(c.FilteredLessons()))

	require.NoError(t, c.SelectAge(4))
	require.Equal(t, []string{"B"}, cardIDs(c.FilteredLessons()))

	require.NoError(t, c.SelectAge(5))
	require.Empty(t, c.FilteredLessons())
	_, ok := c.Current()
	require.False(t, ok)

	err := c.SelectAge(9)
	require.ErrorIs(t, err, lesson.ErrUnknownAge)
	require.Equal(t, lesson.Age(5), c.Age())
}

func TestSelectAgeLeavesSelectionAlone(t *testing.T) {
	c := NewCatalog(sampleCatalog(), 3)
	l, _ := c.Current()
	require.NoError(t, c.SelectLesson(l))

	require.NoError(t, c.SelectAge(3))
	require.NoError(t, c.SelectAge(4))
	got, ok := c.SelectedLesson()
	require.True(t, ok)
	require.Equal(t, "A", got.ID)
}

func TestNewCatalogFallsBackToYoungestTier(t *testing.T) {
	c := NewCatalog(sampleCatalog(), 42)
	require.Equal(t, lesson.DefaultAge, c.Age())
}

func TestStepAgeClamps(t *testing.T) {
	c := NewCatalog(sampleCatalog(), 3)
	c.StepAge(-1)
	require.Equal(t, lesson.Age(3), c.Age())
	c.StepAge(2)
	require.Equal(t, lesson.Age(5), c.Age())
	c.StepAge(10)
	require.Equal(t, lesson.Age(6), c.Age())
}

func TestCursorAndSearch(t *testing.T) {
	c := NewCatalog(sampleCatalog(), 3)
	c.MoveCursor(5)
	require.Equal(t, 1, c.Cursor())
	l, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, "C", l.ID)

	c.SetQuery("faces")
	require.Equal(t, 0, c.Cursor())
	require.Equal(t, []string{"A"}, cardIDs(c.Cards()))
	require.Len(t, c.FilteredLessons(), 2, "search never changes the age filter")

	c.SetQuery("song")
	require.Empty(t, c.Cards(), "lessons from other tiers are not searchable")
	require.Equal(t, "2 lessons • September – May", c.Summary())
}

func TestSelectLessonValidatesFilter(t *testing.T) {
	c := NewCatalog(sampleCatalog(), 3)
	other, ok := sampleCatalog().Get("B")
	require.True(t, ok)

	err := c.SelectLesson(other)
	require.ErrorIs(t, err, ErrLessonNotInFilter)
	require.False(t, c.Detail().Visible())

	err = c.SelectLesson(lesson.Lesson{ID: "ghost", Age: 3})
	require.ErrorIs(t, err, ErrLessonNotInFilter)
	require.False(t, c.Detail().Visible())
}

func TestDetailLifecycle(t *testing.T) {
	c := NewCatalog(sampleCatalog(), 3)
	d := c.Detail()
	require.False(t, d.Visible())

	require.NoError(t, c.OpenCurrent())
	require.True(t, d.Visible())
	_, expanded := d.Expanded()
	require.False(t, expanded)

	d.ToggleStep(1)
	idx, expanded := d.Expanded()
	require.True(t, expanded)
	require.Equal(t, 1, idx)

	d.ToggleStep(2)
	idx, _ = d.Expanded()
	require.Equal(t, 2, idx, "only one step open at a time")

	d.ToggleStep(2)
	_, expanded = d.Expanded()
	require.False(t, expanded)

	d.ToggleStep(0)
	d.ToggleStep(7)
	idx, _ = d.Expanded()
	require.Equal(t, 0, idx, "out of range toggles are ignored")

	d.Dismiss()
	require.False(t, d.Visible())
	_, ok := c.SelectedLesson()
	require.False(t, ok)
	d.Dismiss()
	require.False(t, d.Visible())

	require.NoError(t, c.OpenCurrent())
	_, expanded = d.Expanded()
	require.False(t, expanded, "reopening resets the accordion")
}

func TestSelectingAnotherLessonResetsSteps(t *testing.T) {
	c := NewCatalog(sampleCatalog(), 3)
	require.NoError(t, c.OpenCurrent())
	d := c.Detail()
	d.MoveStep(1)
	d.ToggleFocused()
	_, expanded := d.Expanded()
	require.True(t, expanded)

	next, _ := sampleCatalog().Get("C")
	require.NoError(t, c.SelectLesson(next))
	_, expanded = d.Expanded()
	require.False(t, expanded)
	require.Equal(t, 0, d.StepCursor())
}

func TestCategoryLookupsAreTotal(t *testing.T) {
	require.Equal(t, IconHeart, CategoryIcon(lesson.CategoryEmotions))
	require.Equal(t, IconUsers, CategoryIcon(lesson.CategorySocialization))

	for _, cat := range []string{"Unknown", "", "Life skills", "emotions"} {
		require.Equal(t, DefaultIcon, CategoryIcon(cat), cat)
		require.Equal(t, DefaultStyle, CategoryStyle(cat), cat)
		require.NotEmpty(t, CategoryStyle(cat).Class)
	}

	for cat := range categoryIcons {
		_, ok := categoryStyles[cat]
		require.True(t, ok, "category %q has an icon but no style", cat)
	}
}

func TestSettingsScenario(t *testing.T) {
	s := NewSettings()
	require.Equal(t, Values{FontSize: FontBase}, s.Values())

	s.SetHighContrast(true)
	require.Equal(t, Values{FontSize: FontBase, HighContrast: true}, s.Values())

	require.NoError(t, s.SetFontSize(FontXL))
	require.Equal(t, Values{FontSize: FontXL, HighContrast: true}, s.Values())

	err := s.SetFontSize("huge")
	require.ErrorIs(t, err, ErrUnknownFontSize)
	require.Equal(t, FontXL, s.Values().FontSize)
}

func TestSettingsFieldsAreIndependent(t *testing.T) {
	start := Values{FontSize: FontLarge, HighContrast: true, ReducedMotion: false}
	cases := []struct {
		name  string
		apply func(*Settings)
		want  Values
	}{
		{"font", func(s *Settings) { _ = s.SetFontSize(FontBase) }, Values{FontBase, true, false}},
		{"contrast", func(s *Settings) { s.SetHighContrast(false) }, Values{FontLarge, false, false}},
		{"motion", func(s *Settings) { s.SetReducedMotion(true) }, Values{FontLarge, true, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Settings{values: start}
			tc.apply(s)
			require.Equal(t, tc.want, s.Values())
		})
	}
}

func TestSettingsOverlayNavigation(t *testing.T) {
	s := NewSettings()
	require.False(t, s.Visible())
	s.Open()
	require.True(t, s.Visible())

	s.MoveField(-1)
	require.Equal(t, FieldReducedMotion, s.Field())
	s.ToggleField()
	require.True(t, s.Values().ReducedMotion)

	s.MoveField(1)
	require.Equal(t, FieldFontSize, s.Field())
	s.ToggleField()
	s.ToggleField()
	require.Equal(t, FontXL, s.Values().FontSize)
	s.ToggleField()
	require.Equal(t, FontBase, s.Values().FontSize)

	s.CycleFontSize(-1)
	require.Equal(t, FontBase, s.Values().FontSize)
	s.CycleFontSize(5)
	require.Equal(t, FontXL, s.Values().FontSize)

	s.Dismiss()
	require.False(t, s.Visible())
}

func TestModifiers(t *testing.T) {
	require.Equal(t, []string{"text-base-accessible"}, ModifiersFor(DefaultValues()).Classes())
	require.Equal(t,
		[]string{"text-xl-accessible", "high-contrast", "reduced-motion"},
		ModifiersFor(Values{FontSize: FontXL, HighContrast: true, ReducedMotion: true}).Classes(),
	)
	require.Equal(t, "text-lg-accessible", ModifiersFor(Values{FontSize: FontLarge}).FontClass)
}

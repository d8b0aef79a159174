package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lessonbook/internal/lesson"
	"github.com/jask/lessonbook/internal/logger"
	"github.com/jask/lessonbook/internal/viewer"
)

const pulseInterval = 600 * time.Millisecond

// App is the bubbletea model for the lesson catalog. It owns the viewer
// state and turns key presses into calls on it.
type App struct {
	catalog  *viewer.Catalog
	settings *viewer.Settings
	log      *logger.Logger
	keys     *keyRegistry
	styles   styles

	search    textinput.Model
	searching bool

	width  int
	height int

	status    string
	statusErr bool

	// pulse alternates the focused card border; it never changes while
	// reduced motion is on.
	pulse   bool
	ticking bool
}

// New builds the app over a loaded catalog. start is the initial age tier.
func New(cat *lesson.Catalog, start lesson.Age, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search titles and categories"
	search.CharLimit = 64

	settings := viewer.NewSettings()
	return &App{
		catalog:  viewer.NewCatalog(cat, start),
		settings: settings,
		log:      log,
		keys:     newKeyRegistry(),
		styles:   newStyles(settings.Modifiers()),
		search:   search,
	}
}

func (a *App) Init() tea.Cmd {
	return a.scheduleTick()
}

func (a *App) scheduleTick() tea.Cmd {
	if a.ticking || a.settings.Values().ReducedMotion {
		return nil
	}
	a.ticking = true
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg { return pulseMsg{} })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.search.Width = max(10, m.Width-8)
	case pulseMsg:
		a.ticking = false
		if a.settings.Values().ReducedMotion {
			a.pulse = false
			return a, nil
		}
		a.pulse = !a.pulse
		return a, a.scheduleTick()
	case tea.KeyMsg:
		if a.keys.lookup(m.String(), scopeGlobal) == actionQuit {
			return a, tea.Quit
		}
		switch a.scope() {
		case scopeSearch:
			return a.handleSearchKey(m)
		case scopeSettings:
			return a.handleSettingsKey(m)
		case scopeDetail:
			return a.handleDetailKey(m)
		default:
			return a.handleCatalogKey(m)
		}
	}
	return a, nil
}

// scope picks the key scope for the topmost visible surface.
func (a *App) scope() string {
	switch {
	case a.searching:
		return scopeSearch
	case a.settings.Visible():
		return scopeSettings
	case a.catalog.Detail().Visible():
		return scopeDetail
	default:
		return scopeCatalog
	}
}

func (a *App) handleCatalogKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := m.String()
	switch a.keys.lookup(keyName, scopeCatalog) {
	case actionQuit:
		return a, tea.Quit
	case actionAge:
		idx := int(keyName[0] - '1')
		if idx >= 0 && idx < len(lesson.Ages) {
			a.selectAge(lesson.Ages[idx])
		}
	case actionNextAge:
		a.catalog.StepAge(1)
		a.logAge()
	case actionPrevAge:
		a.catalog.StepAge(-1)
		a.logAge()
	case actionUp:
		a.catalog.MoveCursor(-a.columns())
	case actionDown:
		a.catalog.MoveCursor(a.columns())
	case actionLeft:
		a.catalog.MoveCursor(-1)
	case actionRight:
		a.catalog.MoveCursor(1)
	case actionOpen:
		a.openCurrent()
	case actionSearch:
		a.searching = true
		a.search.SetValue(a.catalog.Query())
		a.search.CursorEnd()
		return a, a.search.Focus()
	case actionClearQuery:
		a.search.SetValue("")
		a.catalog.SetQuery("")
		a.setStatus("")
	case actionSettings:
		a.settings.Open()
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.lookup(m.String(), scopeSearch) {
	case actionConfirm:
		a.searching = false
		a.search.Blur()
		a.log.Debug("search applied", "query", a.catalog.Query(), "matches", len(a.catalog.Cards()))
		return a, nil
	case actionClose:
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.catalog.SetQuery("")
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.catalog.SetQuery(a.search.Value())
	return a, cmd
}

func (a *App) handleDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := a.catalog.Detail()
	switch a.keys.lookup(m.String(), scopeDetail) {
	case actionUp:
		d.MoveStep(-1)
		a.followStep()
	case actionDown:
		d.MoveStep(1)
		a.followStep()
	case actionToggle:
		d.ToggleFocused()
		a.followStep()
	case actionPageUp:
		d.ScrollBy(-a.detailViewport())
	case actionPageDown:
		d.ScrollBy(a.detailViewport())
		body, _ := a.detailBody()
		d.ClampScroll(len(splitLines(body)) - a.detailViewport())
	case actionSettings:
		a.settings.Open()
	case actionClose:
		if l, ok := d.Lesson(); ok {
			a.log.Info("lesson closed", "id", l.ID)
		}
		d.Dismiss()
	}
	return a, nil
}

func (a *App) handleSettingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := a.settings.Values()
	switch a.keys.lookup(m.String(), scopeSettings) {
	case actionUp:
		a.settings.MoveField(-1)
	case actionDown:
		a.settings.MoveField(1)
	case actionLeft:
		if a.settings.Field() == viewer.FieldFontSize {
			a.settings.CycleFontSize(-1)
		}
	case actionRight:
		if a.settings.Field() == viewer.FieldFontSize {
			a.settings.CycleFontSize(1)
		}
	case actionToggle:
		a.settings.ToggleField()
	case actionClose:
		a.settings.Dismiss()
	}
	return a, a.applySettings(before)
}

// applySettings rebuilds the presentation decoration after a change and
// restarts the pulse when motion is turned back on.
func (a *App) applySettings(before viewer.Values) tea.Cmd {
	now := a.settings.Values()
	if now == before {
		return nil
	}
	a.styles = newStyles(a.settings.Modifiers())
	a.log.Info("accessibility settings changed",
		"font_size", string(now.FontSize),
		"high_contrast", now.HighContrast,
		"reduced_motion", now.ReducedMotion,
	)
	if now.ReducedMotion {
		a.pulse = false
		return nil
	}
	return a.scheduleTick()
}

func (a *App) selectAge(age lesson.Age) {
	if err := a.catalog.SelectAge(age); err != nil {
		a.setError(err)
		return
	}
	a.logAge()
}

func (a *App) logAge() {
	a.log.Debug("age selected", "age", int(a.catalog.Age()), "lessons", len(a.catalog.FilteredLessons()))
}

func (a *App) openCurrent() {
	if err := a.catalog.OpenCurrent(); err != nil {
		a.log.Warn("lesson rejected", "error", err)
		a.setError(err)
		return
	}
	if l, ok := a.catalog.SelectedLesson(); ok {
		a.log.Info("lesson opened", "id", l.ID, "age", int(l.Age), "category", l.Category)
		a.setStatus("")
	}
}

func (a *App) setStatus(text string) {
	a.status = text
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = "error: " + err.Error()
	a.statusErr = true
}

// followStep scrolls the detail body so the focused step stays in view.
func (a *App) followStep() {
	d := a.catalog.Detail()
	_, focus := a.detailBody()
	height := a.detailViewport()
	switch {
	case focus < d.Scroll():
		d.ScrollBy(focus - d.Scroll())
	case height > 0 && focus >= d.Scroll()+height:
		d.ScrollBy(focus - height + 1 - d.Scroll())
	}
}

// columns is the number of cards per grid row at the current width.
func (a *App) columns() int {
	if a.width <= 0 {
		return 1
	}
	cols := (a.width - 2) / (a.styles.cardWidth + 3)
	if cols < 1 {
		return 1
	}
	return cols
}

type pulseMsg struct{}

package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/launchpad/internal/catalog"
	"github.com/atomicstack/launchpad/internal/logging/events"
	"github.com/atomicstack/launchpad/internal/search"
	"github.com/atomicstack/launchpad/internal/theme"
	"github.com/atomicstack/launchpad/internal/ui/command"
	uistate "github.com/atomicstack/launchpad/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the launcher window.
type Model struct {
	store *catalog.Store
	view  *uistate.View
	bus   *command.Bus
	keys  KeyMap

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	loading  bool
	launched *catalog.Entry

	queryCursor      cursor.Model
	queryCursorDirty bool

	repeater  *Repeater
	ticking   bool
	dragThumb bool
	dragGrab  int

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state over the loaded catalog and its search
// engine.
func NewModel(store *catalog.Store, engine *search.Engine, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		store:      store,
		bus:        command.New(),
		keys:       DefaultKeyMap(),
		showFooter: showFooter,
		verbose:    verbose,
		repeater:   NewRepeater(),
	}
	m.view = uistate.NewView(func(query string) ([]int, bool) {
		view, noMatches := engine.Filter(query)
		events.Query.Filter(query, len(view), noMatches)
		return view, noMatches
	})
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		c.TextStyle = styles.Query.Copy()
	}
	c.SetChar(" ")
	m.queryCursor = c
	m.registerHandlers()
	return m
}

// Launched returns the entry spawned just before the loop quit, or nil when
// the run ended without a launch.
func (m *Model) Launched() *catalog.Entry {
	return m.launched
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.queryCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):         m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(command.LaunchResult{}): m.handleLaunchResultMsg,
		reflect.TypeOf(command.Paste{}):        m.handlePasteMsg,
		reflect.TypeOf(repeatTickMsg{}):        m.handleRepeatTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.queryCursorDirty {
		m.queryCursorDirty = false
		m.queryCursor.Blink = false
		if cmd := m.queryCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

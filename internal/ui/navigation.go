package ui

import (
	"time"

	"github.com/atomicstack/launchpad/internal/logging/events"
	"github.com/atomicstack/launchpad/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// wheelStep is the number of rows one wheel notch scrolls.
const wheelStep = 3

// repeatTickMsg drives held pointer actions between input events.
type repeatTickMsg struct {
	at time.Time
}

func scheduleRepeatTick() tea.Cmd {
	return tea.Tick(repeatInterval/3, func(t time.Time) tea.Msg {
		return repeatTickMsg{at: t}
	})
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Confirm):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursorUp()
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursorDown()
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursorPageUp()
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursorPageDown()
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursorHome()
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	row := m.view.Cursor
	if hovered := m.view.Hover; hovered >= 0 {
		row = hovered
	}
	if row < 0 || row >= m.view.Len() {
		return nil
	}
	return m.launchRow(row)
}

// launchRow selects results row and hands its entry to the bus for spawning.
func (m *Model) launchRow(row int) tea.Cmd {
	m.view.Cursor = row
	m.view.EnsureVisible(m.maxVisibleRows())
	idx := m.view.At(row)
	entry := m.store.At(idx)
	events.Launch.Selected(entry.Name, entry.Exec)
	m.loading = true
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Launch(command.LaunchRequest{Index: idx, Name: entry.Name, Exec: entry.Exec})
}

func (m *Model) moveCursorUp() {
	if m.view.MoveUp(m.maxVisibleRows()) {
		events.UI.Cursor(m.view.Cursor)
	}
}

func (m *Model) moveCursorDown() {
	if m.view.MoveDown(m.maxVisibleRows()) {
		events.UI.Cursor(m.view.Cursor)
	}
}

func (m *Model) moveCursorPageUp() {
	if m.view.MovePageUp(m.maxVisibleRows()) {
		events.UI.Cursor(m.view.Cursor)
	}
}

func (m *Model) moveCursorPageDown() {
	if m.view.MovePageDown(m.maxVisibleRows()) {
		events.UI.Cursor(m.view.Cursor)
	}
}

func (m *Model) moveCursorHome() {
	if m.view.MoveHome(m.maxVisibleRows()) {
		events.UI.Cursor(m.view.Cursor)
	}
}

func (m *Model) moveCursorEnd() {
	if m.view.MoveEnd(m.maxVisibleRows()) {
		events.UI.Cursor(m.view.Cursor)
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionPress:
		return m.handleMousePress(ev)
	case tea.MouseActionMotion:
		return m.handleMouseMotion(ev)
	case tea.MouseActionRelease:
		m.dragThumb = false
		m.repeater.ReleaseAll()
	}
	return nil
}

func (m *Model) handleMousePress(ev tea.MouseMsg) tea.Cmd {
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.wheelBy(-wheelStep)
		return nil
	case tea.MouseButtonWheelDown:
		m.wheelBy(wheelStep)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if m.scrollbarVisible() && ev.X == m.scrollbarColumn() {
		return m.pressScrollbar(ev.Y)
	}
	if row := m.listRowAt(ev.Y); row >= 0 && !m.loading {
		events.UI.Cursor(row)
		return m.launchRow(row)
	}
	return nil
}

// pressScrollbar starts a thumb drag, or pages through the trough with
// auto-repeat while the button stays down.
func (m *Model) pressScrollbar(y int) tea.Cmd {
	r := y - m.listTop()
	if r < 0 || r >= m.maxVisibleRows() {
		return nil
	}
	start, end := m.thumbSpan()
	switch {
	case r >= start && r < end:
		m.dragThumb = true
		m.dragGrab = r - start
		return nil
	case r < start:
		m.repeater.Press(ActionScrollUp, time.Now())
		m.pageScroll(-1)
	default:
		m.repeater.Press(ActionScrollDown, time.Now())
		m.pageScroll(1)
	}
	return m.ensureRepeatTicks()
}

func (m *Model) handleMouseMotion(ev tea.MouseMsg) tea.Cmd {
	if m.dragThumb {
		m.dragThumbTo(ev.Y)
		return nil
	}
	var cmd tea.Cmd
	if ev.Button == tea.MouseButtonLeft {
		cmd = m.dragScroll(ev.Y)
	}
	if m.view.SetHover(m.listRowAt(ev.Y)) {
		events.UI.Hover(m.view.Hover)
	}
	return cmd
}

// dragScroll auto-repeats cursor movement while a button-down drag sits above
// or below the list. The first edge crossing moves immediately; after the
// repeat delay the held drag keeps moving on ticks. Crossing back inside
// stops it.
func (m *Model) dragScroll(y int) tea.Cmd {
	r := y - m.listTop()
	if r >= 0 && r < m.maxVisibleRows() {
		m.repeater.Release(ActionDragUp)
		m.repeater.Release(ActionDragDown)
		return nil
	}
	action, move := ActionDragUp, m.moveCursorUp
	if r >= 0 {
		action, move = ActionDragDown, m.moveCursorDown
	}
	for _, other := range []Action{ActionScrollUp, ActionScrollDown, ActionDragUp, ActionDragDown} {
		if other != action {
			m.repeater.Release(other)
		}
	}
	if !m.repeater.Held(action) {
		m.repeater.Press(action, time.Now())
		move()
	}
	return m.ensureRepeatTicks()
}

func (m *Model) handleRepeatTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(repeatTickMsg)
	if !ok {
		return nil
	}
	m.ticking = false
	if !m.repeater.Active() {
		return nil
	}
	if m.repeater.Tick(ActionScrollUp, tick.at) {
		m.pageScroll(-1)
	}
	if m.repeater.Tick(ActionScrollDown, tick.at) {
		m.pageScroll(1)
	}
	if m.repeater.Tick(ActionDragUp, tick.at) {
		m.moveCursorUp()
	}
	if m.repeater.Tick(ActionDragDown, tick.at) {
		m.moveCursorDown()
	}
	return m.ensureRepeatTicks()
}

func (m *Model) ensureRepeatTicks() tea.Cmd {
	if m.ticking || !m.repeater.Active() {
		return nil
	}
	m.ticking = true
	return scheduleRepeatTick()
}

func (m *Model) wheelBy(delta int) {
	if m.view.Wheel(delta, m.maxVisibleRows()) {
		events.UI.Scroll(m.view.Scroll)
	}
}

// pageScroll moves the viewport one page in the given direction without
// touching the selection, like a trough click in a desktop scrollbar.
func (m *Model) pageScroll(dir int) {
	m.wheelBy(dir * m.maxVisibleRows())
}

// dragThumbTo maps the pointer row back to a scroll offset while the thumb is
// held.
func (m *Model) dragThumbTo(y int) {
	rows := m.maxVisibleRows()
	total := m.view.Len()
	maxScroll := total - rows
	maxTop := rows - m.thumbHeight()
	if maxScroll <= 0 || maxTop <= 0 {
		return
	}
	top := y - m.listTop() - m.dragGrab
	if top < 0 {
		top = 0
	}
	if top > maxTop {
		top = maxTop
	}
	target := (top*maxScroll + maxTop/2) / maxTop
	if m.view.Wheel(target-m.view.Scroll, rows) {
		events.UI.Scroll(m.view.Scroll)
	}
}

// listTop is the screen row of the first result; the prompt owns row zero.
func (m *Model) listTop() int {
	return 1
}

// listRowAt maps a screen row to a results index, or -1 when the pointer is
// outside the populated list area.
func (m *Model) listRowAt(y int) int {
	r := y - m.listTop()
	if r < 0 || r >= m.maxVisibleRows() {
		return -1
	}
	row := m.view.Scroll + r
	if row >= m.view.Len() {
		return -1
	}
	return row
}

package ui

import (
	"github.com/atomicstack/launchpad/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateQueryCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

func (m *Model) noteQueryCursorChange(before int) {
	if before != m.view.QueryCursorPos() {
		m.queryCursorDirty = true
	}
}

// noteQueryEdit clears any stale status lines after a successful mutation.
func (m *Model) noteQueryEdit(before int) {
	m.noteQueryCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
}

// handleTextInput routes keystrokes that edit the query or move its cursor.
// List navigation and the confirm/cancel keys stay with handleKeyMsg.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.loading {
		return false, nil
	}
	v := m.view
	switch msg.String() {
	case "ctrl+u":
		before := v.QueryCursorPos()
		if !v.ClearQuery() {
			return false, nil
		}
		m.noteQueryEdit(before)
		events.Edit.Cleared()
		return true, nil
	case "ctrl+w":
		before := v.QueryCursorPos()
		if !v.DeleteWordBackward() {
			return false, nil
		}
		m.noteQueryEdit(before)
		events.Edit.WordBackspace(v.Query)
		return true, nil
	case "alt+d":
		before := v.QueryCursorPos()
		if !v.DeleteWordForward() {
			return false, nil
		}
		m.noteQueryEdit(before)
		events.Edit.WordDeleteForward(v.Query)
		return true, nil
	case "ctrl+k":
		before := v.QueryCursorPos()
		if !v.DeleteToEnd() {
			return false, nil
		}
		m.noteQueryEdit(before)
		events.Edit.KillToEnd(v.Query)
		return true, nil
	case "ctrl+d":
		before := v.QueryCursorPos()
		if !v.DeleteRuneForward() {
			return false, nil
		}
		m.noteQueryEdit(before)
		events.Edit.DeleteForward(v.Query)
		return true, nil
	case "ctrl+a":
		before := v.QueryCursorPos()
		if !v.MoveQueryStart() {
			return false, nil
		}
		m.noteQueryCursorChange(before)
		events.Edit.Cursor(v.QueryCursor)
		return true, nil
	case "ctrl+e":
		before := v.QueryCursorPos()
		if !v.MoveQueryEnd() {
			return false, nil
		}
		m.noteQueryCursorChange(before)
		events.Edit.Cursor(v.QueryCursor)
		return true, nil
	case "alt+b":
		before := v.QueryCursorPos()
		if !v.MoveQueryWordLeft() {
			return false, nil
		}
		m.noteQueryCursorChange(before)
		events.Edit.CursorWord(v.QueryCursor)
		return true, nil
	case "alt+f":
		before := v.QueryCursorPos()
		if !v.MoveQueryWordRight() {
			return false, nil
		}
		m.noteQueryCursorChange(before)
		events.Edit.CursorWord(v.QueryCursor)
		return true, nil
	case "ctrl+v", "ctrl+y":
		return true, m.bus.FetchClipboard()
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := v.QueryCursorPos()
		if !v.DeleteRuneBackward() {
			return false, nil
		}
		m.noteQueryEdit(before)
		events.Edit.Backspace(v.Query)
		return true, nil
	case tea.KeyDelete:
		before := v.QueryCursorPos()
		if !v.DeleteRuneForward() {
			return false, nil
		}
		m.noteQueryEdit(before)
		events.Edit.DeleteForward(v.Query)
		return true, nil
	case tea.KeyRunes:
		if msg.Alt {
			return false, nil
		}
		return m.insertRunes(msg.Runes), nil
	case tea.KeySpace:
		return m.insertRunes([]rune{' '}), nil
	case tea.KeyLeft:
		before := v.QueryCursorPos()
		if !v.MoveQueryLeft() {
			return false, nil
		}
		m.noteQueryCursorChange(before)
		events.Edit.Cursor(v.QueryCursor)
		return true, nil
	case tea.KeyRight:
		before := v.QueryCursorPos()
		if !v.MoveQueryRight() {
			return false, nil
		}
		m.noteQueryCursorChange(before)
		events.Edit.Cursor(v.QueryCursor)
		return true, nil
	}
	return false, nil
}

// insertRunes feeds printable runes into the query; anything the edit buffer
// rejects (control characters, non-ASCII) is dropped.
func (m *Model) insertRunes(runes []rune) bool {
	before := m.view.QueryCursorPos()
	inserted := false
	for _, r := range runes {
		if m.view.InsertRune(r) {
			inserted = true
		}
	}
	if !inserted {
		return false
	}
	m.noteQueryEdit(before)
	events.Edit.Insert(m.view.Query)
	return true
}

func (m *Model) pasteClipboard(text string) bool {
	before := m.view.QueryCursorPos()
	if !m.view.PasteQuery(text) {
		return false
	}
	m.noteQueryEdit(before)
	events.Edit.Paste(len(text))
	return true
}

// queryPrompt renders the prompt line: marker, query text and the caret.
func (m *Model) queryPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.queryCursor.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		m.queryCursor.TextStyle = styles.Query.Copy()
	} else {
		m.queryCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.QueryPrompt != nil {
		prompt = styles.QueryPrompt.Render(prompt)
	}
	text := m.view.Query
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.QueryPlaceholder != nil {
			m.queryCursor.TextStyle = styles.QueryPlaceholder.Copy()
		}
		caret := m.renderQueryCaret(caretRune)
		return prompt + caret + render(styles.QueryPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.view.QueryCursorPos()
	before := render(styles.Query, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderQueryCaret(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Query, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderQueryCaret(char string) string {
	if char == "" {
		char = " "
	}
	m.queryCursor.SetChar(char)

	base := m.queryCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.queryCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}

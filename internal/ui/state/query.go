package state

import (
	"strings"
	"unicode"
)

// SetQuery replaces the query text and cursor, clamping the cursor into
// [0, len], and recomputes the results.
func (v *View) SetQuery(text string, cursor int) {
	v.Query = text
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	v.QueryCursor = cursor
	v.Recompute()
}

// QueryCursorPos returns the rune offset of the query cursor, clamped.
func (v *View) QueryCursorPos() int {
	runes := []rune(v.Query)
	if v.QueryCursor < 0 {
		return 0
	}
	if v.QueryCursor > len(runes) {
		return len(runes)
	}
	return v.QueryCursor
}

// InsertRune inserts a printable ASCII rune at the cursor, lowercased. Other
// runes are ignored.
func (v *View) InsertRune(r rune) bool {
	if r < ' ' || r > '~' {
		return false
	}
	return v.insertText(string(unicode.ToLower(r)))
}

// PasteQuery trims surrounding whitespace from clip and inserts the remainder
// at the cursor.
func (v *View) PasteQuery(clip string) bool {
	return v.insertText(strings.TrimSpace(clip))
}

func (v *View) insertText(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	v.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune immediately before the cursor.
func (v *View) DeleteRuneBackward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	v.SetQuery(string(updated), pos-1)
	return true
}

// DeleteRuneForward deletes the rune at the cursor.
func (v *View) DeleteRuneForward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	updated := append(runes[:pos], runes[pos+1:]...)
	v.SetQuery(string(updated), pos)
	return true
}

// DeleteToEnd removes everything from the cursor to the end of the query.
func (v *View) DeleteToEnd() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	v.SetQuery(string(runes[:pos]), pos)
	return true
}

// ClearQuery empties the query.
func (v *View) ClearQuery() bool {
	if v.Query == "" && v.QueryCursorPos() == 0 {
		return false
	}
	v.SetQuery("", 0)
	return true
}

// DeleteWordBackward deletes from the cursor back over trailing whitespace
// and the preceding word.
func (v *View) DeleteWordBackward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	v.SetQuery(string(updated), i)
	return true
}

// DeleteWordForward skips whitespace after the cursor, consumes one word, and
// deletes the whole span when non-empty.
func (v *View) DeleteWordForward() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	updated := append(runes[:pos], runes[i:]...)
	v.SetQuery(string(updated), pos)
	return true
}

// MoveQueryStart moves the cursor to the beginning of the query.
func (v *View) MoveQueryStart() bool {
	if v.QueryCursorPos() == 0 {
		return false
	}
	v.QueryCursor = 0
	return true
}

// MoveQueryEnd moves the cursor past the last rune.
func (v *View) MoveQueryEnd() bool {
	end := len([]rune(v.Query))
	if v.QueryCursorPos() == end {
		return false
	}
	v.QueryCursor = end
	return true
}

// MoveQueryLeft moves the cursor one rune backward.
func (v *View) MoveQueryLeft() bool {
	pos := v.QueryCursorPos()
	if pos == 0 {
		return false
	}
	v.QueryCursor = pos - 1
	return true
}

// MoveQueryRight moves the cursor one rune forward.
func (v *View) MoveQueryRight() bool {
	pos := v.QueryCursorPos()
	if pos >= len([]rune(v.Query)) {
		return false
	}
	v.QueryCursor = pos + 1
	return true
}

// MoveQueryWordLeft moves the cursor to the start of the previous word.
func (v *View) MoveQueryWordLeft() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	v.QueryCursor = i
	return true
}

// MoveQueryWordRight moves the cursor past the end of the next word.
func (v *View) MoveQueryWordRight() bool {
	runes := []rune(v.Query)
	pos := v.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	v.QueryCursor = i
	return true
}

// wordStart scans backward from pos over whitespace, then over the word.
func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

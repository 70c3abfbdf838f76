package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/launchpad/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Scrollbar glyphs drawn in the last column when the list overflows the
// viewport.
const (
	scrollbarTrack = "│"
	scrollbarThumb = "█"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	suffix        string
	suffixStyle   *lipgloss.Style
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.queryPrompt(), raw: true})

	maxRows := m.maxVisibleRows()
	m.view.EnsureVisible(maxRows)
	if m.view.Len() == 0 {
		text := "(no entries)"
		style := styles.Info
		if m.view.NoMatches {
			text = fmt.Sprintf("No matches for %q", m.view.Query)
			style = styles.NoMatches
		}
		lines = append(lines, styledLine{text: text, style: style})
	} else {
		start := m.view.Scroll
		end := start + maxRows
		if end > m.view.Len() {
			end = m.view.Len()
		}
		for row := start; row < end; row++ {
			lines = append(lines, m.buildRow(row, m.width))
		}
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerLine(), style: styles.Footer})
	}

	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// buildRow constructs a single styledLine for a result row. width is the
// target column width; when > 0 the name is padded so that the selected row's
// background spans the full container.
func (m *Model) buildRow(row, width int) styledLine {
	name := m.store.At(m.view.At(row)).Name
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	switch row {
	case m.view.Cursor:
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	case m.view.Hover:
		lineStyle = styles.HoverItem
	}
	text := indicator + " " + name
	target := width
	if m.scrollbarVisible() {
		target--
	}
	if target > 0 {
		if pad := target - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	line := styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
	if m.scrollbarVisible() {
		line.suffix = scrollbarTrack
		line.suffixStyle = styles.Scrollbar
		if start, end := m.thumbSpan(); row-m.view.Scroll >= start && row-m.view.Scroll < end {
			line.suffix = scrollbarThumb
			line.suffixStyle = styles.ScrollbarThumb
		}
	}
	return line
}

// footerLine shows the selected entry's command to the left and the position
// within the results to the right. Without a selection the key hints show
// instead.
func (m *Model) footerLine() string {
	left := keyHints(m.keys.Up, m.keys.Confirm, m.keys.Quit)
	if idx := m.view.Selected(); idx >= 0 {
		left = m.store.At(idx).Exec
	}
	right := ""
	if n := m.view.Len(); n > 0 {
		right = fmt.Sprintf("%d/%d", m.view.Cursor+1, n)
	}
	if m.width <= 0 || right == "" {
		if right == "" {
			return left
		}
		return left + "  " + right
	}
	gap := m.width - len([]rune(left)) - len([]rune(right))
	if gap < 2 {
		left = truncateText(left, m.width-len([]rune(right))-2)
		gap = m.width - len([]rune(left)) - len([]rune(right))
		if gap < 2 {
			gap = 2
		}
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.view.EnsureVisible(m.maxVisibleRows())
	events.UI.Resize(m.width, m.height)
	return nil
}

// maxVisibleRows reports how many result rows fit between the prompt and the
// status/footer lines. Without a known height the whole list is visible.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		if n := m.view.Len(); n > 0 {
			return n
		}
		return 1
	}
	used := 1 // prompt line
	if m.currentInfo() != "" {
		used += 2
	}
	if m.errMsg != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// scrollbarVisible reports whether the list overflows the viewport and a
// scrollbar column is drawn.
func (m *Model) scrollbarVisible() bool {
	return m.width > 1 && m.view.Len() > m.maxVisibleRows()
}

func (m *Model) scrollbarColumn() int {
	return m.width - 1
}

// thumbHeight sizes the thumb proportionally to the visible share of the
// list, never below one row.
func (m *Model) thumbHeight() int {
	rows := m.maxVisibleRows()
	total := m.view.Len()
	if total <= 0 || rows <= 0 {
		return 1
	}
	h := rows * rows / total
	if h < 1 {
		h = 1
	}
	if h > rows {
		h = rows
	}
	return h
}

// thumbSpan returns the thumb's [start, end) rows within the viewport.
func (m *Model) thumbSpan() (int, int) {
	rows := m.maxVisibleRows()
	h := m.thumbHeight()
	maxScroll := m.view.Len() - rows
	maxTop := rows - h
	top := 0
	if maxScroll > 0 && maxTop > 0 {
		top = (m.view.Scroll*maxTop + maxScroll/2) / maxScroll
	}
	return top, top + h
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		target := width - len([]rune(line.suffix))
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); target > 1 && w > target {
				text = truncate.StringWithTail(text, uint(target-1), "…")
			}
		} else {
			text = truncateText(text, target)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		if line.suffix != "" {
			glyph := line.suffix
			if line.suffixStyle != nil {
				glyph = line.suffixStyle.Render(glyph)
			}
			text += glyph
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}

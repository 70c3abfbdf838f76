package events

import "github.com/atomicstack/launchpad/internal/logging"

type UITracer struct{}

type EditTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Edit    = EditTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Scroll(offset int) {
	logging.Trace("list.scroll", map[string]interface{}{"offset": offset})
}

func (UITracer) Hover(row int) {
	logging.Trace("list.hover", map[string]interface{}{"row": row})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (EditTracer) Insert(query string) {
	logging.Trace("edit.insert", map[string]interface{}{"query": query})
}

func (EditTracer) Backspace(query string) {
	logging.Trace("edit.backspace", map[string]interface{}{"query": query})
}

func (EditTracer) DeleteForward(query string) {
	logging.Trace("edit.delete-forward", map[string]interface{}{"query": query})
}

func (EditTracer) KillToEnd(query string) {
	logging.Trace("edit.kill-to-end", map[string]interface{}{"query": query})
}

func (EditTracer) WordBackspace(query string) {
	logging.Trace("edit.word-backspace", map[string]interface{}{"query": query})
}

func (EditTracer) WordDeleteForward(query string) {
	logging.Trace("edit.word-delete-forward", map[string]interface{}{"query": query})
}

func (EditTracer) Cleared() {
	logging.Trace("edit.clear", nil)
}

func (EditTracer) Cursor(pos int) {
	logging.Trace("edit.cursor", map[string]interface{}{"cursor": pos})
}

func (EditTracer) CursorWord(pos int) {
	logging.Trace("edit.cursor-word", map[string]interface{}{"cursor": pos})
}

func (EditTracer) Paste(chars int) {
	logging.Trace("edit.paste", map[string]interface{}{"chars": chars})
}

func (CommandTracer) Queue(id string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id})
}

func (CommandTracer) Result(id, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "msg": msgType})
}

func (CommandTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"id": id, "error": err.Error()})
}

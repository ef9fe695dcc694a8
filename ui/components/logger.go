package components

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"
)

type LogEvent struct {
	Time    time.Time
	Level   log.Level
	Message string
}

// LogHandler keeps the last maxLines log records and shows them in a
// read-only multi-line entry.
type LogHandler struct {
	events   chan LogEvent
	logView  *widget.Entry
	scroll   *container.Scroll
	maxLines int
	lines    []string
}

func NewLogHandler(maxLines int) *LogHandler {
	handler := &LogHandler{
		events:   make(chan LogEvent, 1000),
		maxLines: maxLines,
		lines:    make([]string, 0, maxLines),
	}

	handler.logView = widget.NewMultiLineEntry()
	handler.logView.Disable()
	handler.logView.TextStyle = fyne.TextStyle{Monospace: true}
	handler.logView.Wrapping = fyne.TextWrapWord

	handler.scroll = container.NewScroll(handler.logView)
	handler.scroll.SetMinSize(fyne.NewSize(260, 240))

	go handler.processEvents()

	return handler
}

func (h *LogHandler) processEvents() {
	for event := range h.events {
		h.lines = append(h.lines, formatEvent(event))
		if len(h.lines) > h.maxLines {
			h.lines = h.lines[1:]
		}

		text := strings.Join(h.lines, "\n")
		fyne.Do(func() {
			h.logView.SetText(text)
			h.scroll.ScrollToBottom()
		})
	}
}

func formatEvent(event LogEvent) string {
	timeStr := event.Time.Format("15:04:05")
	levelStr := fmt.Sprintf("[%-5s]", event.Level.String())
	return fmt.Sprintf("%s %s %s", timeStr, levelStr, event.Message)
}

// AddEvent queues a record. Records are dropped while the queue is full.
func (h *LogHandler) AddEvent(level log.Level, msg string) {
	select {
	case h.events <- LogEvent{Time: time.Now(), Level: level, Message: msg}:
	default:
	}
}

func (h *LogHandler) Text() string {
	return h.logView.Text
}

func (h *LogHandler) GetContainer() fyne.CanvasObject {
	return h.scroll
}

// Hook feeds logrus records into the view.
func (h *LogHandler) Hook() log.Hook {
	return &logrusHook{handler: h}
}

type logrusHook struct {
	handler *LogHandler
}

func (h *logrusHook) Levels() []log.Level {
	return []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel, log.WarnLevel, log.InfoLevel, log.DebugLevel}
}

func (h *logrusHook) Fire(entry *log.Entry) error {
	msg := entry.Message
	if len(entry.Data) > 0 {
		msg = fmt.Sprintf("%s %v", msg, entry.Data)
	}
	h.handler.AddEvent(entry.Level, msg)
	return nil
}

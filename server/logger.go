package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// notificationLevel is the client requested level; nothing is sent before it is set.
type notificationLevel struct {
	enabled atomic.Bool
	level   slog.LevelVar
}

func (l *notificationLevel) set(level slog.Level) {
	l.level.Set(level)
	l.enabled.Store(true)
}

func (l *notificationLevel) allows(level slog.Level) bool {
	return l.enabled.Load() && level >= l.level.Level()
}

type logMessageParams struct {
	Level  string                 `json:"level"`
	Logger string                 `json:"logger,omitempty"`
	Data   map[string]interface{} `json:"data"`
}

// notificationHandler is a slog.Handler sending records to the client as notifications/message
type notificationHandler struct {
	name     string
	level    *notificationLevel
	notifier transport.Notifier
	attrs    []slog.Attr
	group    string
}

func newNotificationHandler(name string, level *notificationLevel, notifier transport.Notifier) *notificationHandler {
	return &notificationHandler{name: name, level: level, notifier: notifier}
}

func (h *notificationHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.notifier != nil && h.level.allows(level)
}

func (h *notificationHandler) Handle(ctx context.Context, record slog.Record) error {
	data := map[string]interface{}{"message": record.Message}
	fields := data
	if h.group != "" {
		fields = map[string]interface{}{}
		data[h.group] = fields
	}
	for _, attr := range h.attrs {
		fields[attr.Key] = attr.Value.Resolve().Any()
	}
	record.Attrs(func(attr slog.Attr) bool {
		fields[attr.Key] = attr.Value.Resolve().Any()
		return true
	})
	params := logMessageParams{Level: LevelName(record.Level), Logger: h.name, Data: data}
	notification := &jsonrpc.Notification{Method: schema.MethodNotificationMessage}
	var err error
	if notification.Params, err = json.Marshal(params); err != nil {
		return err
	}
	return h.notifier.Notify(context.WithoutCancel(ctx), notification)
}

func (h *notificationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	ret := *h
	ret.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &ret
}

func (h *notificationHandler) WithGroup(name string) slog.Handler {
	ret := *h
	ret.group = name
	return &ret
}

// Package logx provides the colored structured logging used by the mqttwire
// CLI. The codec package itself never imports logx: logging stays at the
// ambient/demo layer, not inside the stateless wire codec.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ansi holds the escape codes for one severity: its tag text and color.
type ansi struct {
	tag   string
	color string
}

var levelStyle = map[slog.Level]ansi{
	slog.LevelDebug: {"debug", "\033[90m"},
	slog.LevelInfo:  {"info", "\033[34m"},
	slog.LevelWarn:  {"warn", "\033[33m"},
	slog.LevelError: {"error", "\033[31m"},
}

const ansiReset = "\033[0m"

// New builds a *slog.Logger that writes one colored line per record to w
// (os.Stderr if w is nil), filtering anything below minLevel.
func New(minLevel slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(&ColoredHandler{out: w, level: minLevel})
}

// ColoredHandler is a slog.Handler that renders "HH:MM:SS [level] prefix: msg
// key=val ..." lines with an ANSI-colored level tag, in place of slog's
// default key=value-only text handler.
type ColoredHandler struct {
	out    io.Writer
	level  slog.Level
	fields []slog.Attr
	prefix string // dot-joined WithGroup names, rendered before the message
}

func (h *ColoredHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *ColoredHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format("15:04:05"))
	b.WriteByte(' ')
	b.WriteString(h.tag(r.Level))
	b.WriteByte(' ')
	if h.prefix != "" {
		b.WriteString(h.prefix)
		b.WriteString(": ")
	}
	b.WriteString(r.Message)
	for _, a := range h.fields {
		writeAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a)
		return true
	})
	b.WriteByte('\n')
	_, err := io.WriteString(h.out, b.String())
	return err
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	b.WriteByte(' ')
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

func (h *ColoredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.fields)+len(attrs))
	merged = append(merged, h.fields...)
	merged = append(merged, attrs...)
	return &ColoredHandler{out: h.out, level: h.level, fields: merged, prefix: h.prefix}
}

func (h *ColoredHandler) WithGroup(name string) slog.Handler {
	prefix := name
	if h.prefix != "" {
		prefix = h.prefix + "." + name
	}
	return &ColoredHandler{out: h.out, level: h.level, fields: h.fields, prefix: prefix}
}

func (h *ColoredHandler) tag(level slog.Level) string {
	style, ok := levelStyle[level]
	if !ok {
		return "[" + level.String() + "]"
	}
	return style.color + "[" + style.tag + "]" + ansiReset
}

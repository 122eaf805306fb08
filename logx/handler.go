// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record, as the
// level, the message, and the attributes as key=value pairs. The level
// is colored when the output is a terminal that supports colors.
type Handler struct {
	out   *termenv.Output
	level slog.Leveler

	// mu guards out, and is shared by the handlers derived
	// through WithAttrs and WithGroup.
	mu *sync.Mutex

	// prefix is the formatted attributes added through WithAttrs.
	prefix string

	// group is the dotted prefix of the keys of the attributes.
	group string
}

// NewHandler returns a new handler that writes to the given writer the
// records at or above the given level. The output options can force a
// color profile; by default it is detected from the writer.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{out: termenv.NewOutput(w, opts...), level: level, mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default logger to one that writes
// to stderr the records at or above [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	b.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	nh := *h
	nh.prefix += b.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group += name + "."
	return &nh
}

func (h *Handler) levelString(l slog.Level) string {
	s := h.out.String(fmt.Sprintf("%-5s", l.String()))
	switch {
	case l >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case l >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case l >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Faint()
	}
	return s.String()
}

// appendAttr writes the attribute as " key=value", flattening groups.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			group += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, group, ga)
		}
		return
	}
	b.WriteString(" ")
	b.WriteString(group)
	b.WriteString(a.Key)
	b.WriteString("=")
	s := a.Value.String()
	if s == "" || strings.ContainsAny(s, " =\"\n\t") {
		s = strconv.Quote(s)
	}
	b.WriteString(s)
}

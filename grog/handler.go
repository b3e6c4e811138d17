// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record, in the
// form "LEVEL message key=value ...", with the level label colored
// according to the color profile of the output.
type Handler struct {
	mu    *sync.Mutex
	out   *termenv.Output
	level slog.Leveler
	attrs string
	group string
}

// NewHandler returns a new [Handler] writing to w. Records below the
// given level are dropped; a nil level means [UserLevel].
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	if level == nil {
		level = userLeveler{}
	}
	return &Handler{mu: &sync.Mutex{}, out: termenv.NewOutput(w, opts...), level: level}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.out.String(r.Level.String()).Foreground(levelColor(r.Level)).String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	nh := *h
	nh.attrs = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

func levelColor(l slog.Level) termenv.Color {
	switch {
	case l >= slog.LevelError:
		return termenv.ANSIRed
	case l >= slog.LevelWarn:
		return termenv.ANSIYellow
	case l >= slog.LevelInfo:
		return termenv.ANSIGreen
	default:
		return termenv.ANSIBlue
	}
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, prefix, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	var s string
	if a.Value.Kind() == slog.KindTime {
		s = a.Value.Time().Format(time.RFC3339)
	} else {
		s = a.Value.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		s = strconv.Quote(s)
	}
	sb.WriteString(s)
}

// Package journal keeps an append-only, in-process log of everything the
// workflow components report. Components receive it as a *slog.Logger.
package journal

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
)

const timestampLayout = "2006-01-02 15:04:05"

type Options struct {
	// Level defaults to slog.LevelInfo.
	Level slog.Leveler
	// Mirror, when set, also receives every record the journal accepts.
	Mirror slog.Handler
	// Now overrides the record timestamp; used by tests.
	Now func() time.Time
}

type Journal struct {
	mu    sync.Mutex
	lines []string
	opts  Options
}

func New(opts Options) *Journal {
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	return &Journal{opts: opts}
}

func (j *Journal) Logger() *slog.Logger {
	return slog.New(&handler{j: j, mirror: j.opts.Mirror})
}

// Lines returns a copy of the journal in the order entries were written.
func (j *Journal) Lines() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.lines)
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.lines)
}

func (j *Journal) append(line string) {
	j.mu.Lock()
	j.lines = append(j.lines, line)
	j.mu.Unlock()
}

func (j *Journal) timestamp(t time.Time) time.Time {
	if j.opts.Now != nil {
		return j.opts.Now()
	}
	if t.IsZero() {
		return time.Now()
	}
	return t
}

type handler struct {
	j      *Journal
	mirror slog.Handler
	prefix string
	attrs  string
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.j.opts.Level.Level()
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(h.j.timestamp(r.Time).Format(timestampLayout))
	b.WriteString("] ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	h.j.append(b.String())

	if h.mirror != nil && h.mirror.Enabled(ctx, r.Level) {
		return h.mirror.Handle(ctx, r.Clone())
	}
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&b, h.prefix, a)
	}
	out := *h
	out.attrs = b.String()
	if h.mirror != nil {
		out.mirror = h.mirror.WithAttrs(attrs)
	}
	return &out
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	out := *h
	out.prefix = h.prefix + name + "."
	if h.mirror != nil {
		out.mirror = h.mirror.WithGroup(name)
	}
	return &out
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, p, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	switch a.Value.Kind() {
	case slog.KindTime:
		b.WriteString(a.Value.Time().Format(time.RFC3339))
	default:
		s := a.Value.String()
		if needsQuoting(s) {
			s = strconv.Quote(s)
		}
		b.WriteString(s)
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

package generation

import (
	"context"
	"strings"
)

// Context carries the shared mutable state of a single run: the random
// stream, the uniqueness sets and the per-department counters. It is owned
// by the Pipeline for the run's lifetime and passed explicitly to every
// generation step; no step touches process-wide state.
type Context struct {
	Cfg      Config
	Rand     *Source
	Catalog  Catalog
	Profiles ProfileSource
	Text     TextSource

	// SeenEmails tracks every email handed out so far in the run.
	SeenEmails map[string]struct{}

	// deptCounts numbers teams within each department (Engineering Team 1,
	// Engineering Team 2, ...).
	deptCounts map[string]int
}

// NewContext assembles the generation context for one run.
func NewContext(cfg Config, cat Catalog, profiles ProfileSource, text TextSource) *Context {
	return &Context{
		Cfg:        cfg,
		Rand:       NewSource(cfg.Seed),
		Catalog:    cat,
		Profiles:   profiles,
		Text:       text,
		SeenEmails: make(map[string]struct{}),
		deptCounts: make(map[string]int),
	}
}

// reseedPhase resets the stream to the master seed. Called at the top of
// every phase; see Source.Reseed for why this stays.
func (g *Context) reseedPhase() {
	g.Rand.Reseed(g.Cfg.Seed)
}

// textOrFallback asks the text source for content and substitutes the
// given fallback on any failure or blank response. Provider errors stop
// here by contract.
func (g *Context) textOrFallback(ctx context.Context, prompt, fallback string) string {
	if g.Text == nil {
		return fallback
	}
	out, err := g.Text.Text(ctx, prompt)
	if err != nil {
		return fallback
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return fallback
	}
	return out
}

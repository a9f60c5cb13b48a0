package search

import (
	"sync/atomic"
	"time"

	"github.com/ef81sp/holorenju/internal/pattern"
)

// Stats aggregates search counters (spec §3's SearchContext fields).
type Stats struct {
	Nodes             int64
	TTHits            int64
	TTCutoffs         int64
	BetaCutoffs       int64
	NullMoveCutoffs   int64
	FutilityPrunes    int64
	ForbiddenChecks   int64
	BoardCopies       int64
	ThreatChecks      int64
	EvalCalls         int64
}

// Context bundles everything one top-level search owns (spec §3's
// SearchContext): the shared TT, per-search Killer/History/ForbiddenCache
// tables, evaluation options, deadlines, and a node budget. Created fresh
// at the start of every findBestMoveIterativeWithTT call and discarded
// afterwards (spec §5: "created at the start of every top-level search;
// discarded afterwards").
type Context struct {
	TT              *TranspositionTable
	Killers         *KillerTable
	History         *HistoryTable
	Forbidden       *ForbiddenCache
	Options         pattern.Options
	Stats           Stats

	SoftDeadline     time.Time
	AbsoluteDeadline time.Time
	NodeBudget       int64

	softExceeded     atomic.Bool
	absoluteExceeded atomic.Bool
	nodeExceeded     atomic.Bool
}

// NewContext builds a fresh per-search context around the long-lived TT
// (spec §9: "make the ID driver acquire them from the context, never
// directly").
func NewContext(tt *TranspositionTable, opts pattern.Options) *Context {
	tt.NewGeneration()
	return &Context{
		TT:        tt,
		Killers:   NewKillerTable(),
		History:   NewHistoryTable(),
		Forbidden: NewForbiddenCache(),
		Options:   opts,
	}
}

// CheckDeadlines is called every 4th node (spec §4.8 step 1) and flips
// the corresponding overrun flags when a limit has been crossed.
func (c *Context) CheckDeadlines(now time.Time) {
	if !c.SoftDeadline.IsZero() && !now.Before(c.SoftDeadline) {
		c.softExceeded.Store(true)
	}
	if !c.AbsoluteDeadline.IsZero() && !now.Before(c.AbsoluteDeadline) {
		c.absoluteExceeded.Store(true)
	}
	if c.NodeBudget > 0 && c.Stats.Nodes >= c.NodeBudget {
		c.nodeExceeded.Store(true)
	}
}

// Interrupted reports whether the absolute-deadline or node-budget flag
// is set — the condition under which recursion collapses to a static-eval
// return (spec §4.8 step 1, §5). The soft-deadline flag is not part of
// it; see SoftExceeded.
func (c *Context) Interrupted() bool {
	return c.absoluteExceeded.Load() || c.nodeExceeded.Load()
}

// SoftExceeded reports whether the soft deadline has passed — this only
// prevents entering the next iterative-deepening iteration (spec §5); it
// does not abort the iteration in progress.
func (c *Context) SoftExceeded() bool {
	return c.softExceeded.Load()
}


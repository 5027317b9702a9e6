// Package reorder coalesces a burst of single-step move gestures into one
// committed move. The quiet-period timer runs as a bubbletea command so the
// commit is handled on the same event loop as the key presses.
package reorder

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultQuiet is the quiet period after the last step before committing.
const DefaultQuiet = time.Second

const unset = -1

// Token identifies one scheduled commit. Only the latest token is live.
type Token int

// Move is a committed displacement. To is a pre-removal slot: when To >
// From the item lands at To-1.
type Move struct {
	From int
	To   int
}

// CommitMsg is delivered when the quiet period of a step elapses.
type CommitMsg struct {
	Token Token
}

// Debouncer tracks the origin and latest target of a move gesture, -1 when
// unset, and the generation of the latest scheduled commit.
type Debouncer struct {
	from, to   int
	quiet      time.Duration
	generation Token
}

// New creates a debouncer. A non-positive quiet period means DefaultQuiet.
func New(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{from: unset, to: unset, quiet: quiet}
}

// Step records a single move step and supersedes any pending commit. The
// origin of the gesture is only recorded on its first step.
func (d *Debouncer) Step(fromPos, toPos int) Token {
	d.generation++
	if d.from == unset {
		d.from = fromPos
	}
	d.to = toPos
	return d.generation
}

// Cmd schedules the commit for token after the quiet period.
func (d *Debouncer) Cmd(token Token) tea.Cmd {
	return tea.Tick(d.quiet, func(time.Time) tea.Msg {
		return CommitMsg{Token: token}
	})
}

// Fire handles an elapsed quiet period. It returns the move to apply, or
// false when the token was superseded or nothing is pending.
func (d *Debouncer) Fire(token Token) (Move, bool) {
	if token != d.generation {
		return Move{}, false
	}
	if d.from == unset && d.to == unset {
		return Move{}, false
	}
	m := Move{From: d.from, To: d.to}
	if m.To > m.From {
		m.To++
	}
	d.from, d.to = unset, unset
	return m, true
}

// Flush commits the pending gesture immediately. The scheduled commit
// then finds nothing pending and is ignored.
func (d *Debouncer) Flush() (Move, bool) {
	return d.Fire(d.generation)
}

// Cancel drops the pending gesture and invalidates any scheduled commit.
func (d *Debouncer) Cancel() {
	d.generation++
	d.from, d.to = unset, unset
}

// Pending reports whether a gesture is waiting to be committed.
func (d *Debouncer) Pending() bool {
	return d.from != unset || d.to != unset
}

// State returns the recorded origin and target, -1 when unset.
func (d *Debouncer) State() (from, to int) {
	return d.from, d.to
}

// Quiet returns the configured quiet period.
func (d *Debouncer) Quiet() time.Duration {
	return d.quiet
}

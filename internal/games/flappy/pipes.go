package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Pipe is an obstacle pair: two barriers with a passable gap between them.
type Pipe struct {
	Top    core.Rect
	Bottom core.Rect
	Scored bool // Whether the pipe has been credited toward the score
}

// NewPipe builds a pipe pair at x whose gap of gapSize is centered on gapCenter.
// The top barrier spans from the top of the screen and the bottom barrier
// reaches the bottom edge.
func NewPipe(x, width, gapCenter, gapSize, screenH float64) Pipe {
	gapTop := gapCenter - gapSize/2
	gapBottom := gapCenter + gapSize/2
	return Pipe{
		Top:    core.NewRect(x, 0, width, gapTop),
		Bottom: core.NewRect(x, gapBottom, width, screenH-gapBottom),
	}
}

// X returns the left edge of the pair.
func (p Pipe) X() float64 {
	return p.Top.X
}

// Right returns the right edge of the pair.
func (p Pipe) Right() float64 {
	return p.Top.Right()
}

// Gap returns the height of the opening between the barriers.
func (p Pipe) Gap() float64 {
	return p.Bottom.Y - p.Top.Bottom()
}

// Hits reports whether r overlaps either barrier.
func (p Pipe) Hits(r core.Rect) bool {
	return r.Intersects(p.Top) || r.Intersects(p.Bottom)
}

// PipeList is an ordered collection of active pipes.
// Insertion order is spawn order, which is also left-to-right screen order.
type PipeList struct {
	pipes []Pipe
}

// Len returns the number of active pipes.
func (l *PipeList) Len() int {
	return len(l.pipes)
}

// Push appends a newly spawned pipe.
func (l *PipeList) Push(p Pipe) {
	l.pipes = append(l.pipes, p)
}

// Clear removes every pipe, keeping the backing storage.
func (l *PipeList) Clear() {
	l.pipes = l.pipes[:0]
}

// All returns a copy of the active pipes in spawn order.
func (l *PipeList) All() []Pipe {
	out := make([]Pipe, len(l.pipes))
	copy(out, l.pipes)
	return out
}

// Advance moves every pipe dx units horizontally.
func (l *PipeList) Advance(dx float64) {
	for i := range l.pipes {
		l.pipes[i].Top.X += dx
		l.pipes[i].Bottom.X += dx
	}
}

// ScorePassed marks every unscored pipe whose right edge is left of x and
// returns how many were newly marked. A pipe is counted at most once.
func (l *PipeList) ScorePassed(x float64) int {
	passed := 0
	for i := range l.pipes {
		if !l.pipes[i].Scored && l.pipes[i].Right() < x {
			l.pipes[i].Scored = true
			passed++
		}
	}
	return passed
}

// RemoveOffscreen drops pipes whose right edge is left of minRight and
// compacts the rest in place, preserving order. Returns the number removed.
func (l *PipeList) RemoveOffscreen(minRight float64) int {
	kept := l.pipes[:0]
	for _, p := range l.pipes {
		if p.Right() >= minRight {
			kept = append(kept, p)
		}
	}
	removed := len(l.pipes) - len(kept)
	// Zero the tail so stale pipes are not visible through the backing array
	for i := len(kept); i < len(l.pipes); i++ {
		l.pipes[i] = Pipe{}
	}
	l.pipes = kept
	return removed
}

// FirstHit returns the index of the first pipe overlapping r, or -1.
func (l *PipeList) FirstHit(r core.Rect) int {
	for i, p := range l.pipes {
		if p.Hits(r) {
			return i
		}
	}
	return -1
}

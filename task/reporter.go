package task

import "github.com/katalvlaran/netex/result"

// Reporter receives the output of a task. Implementations must not block.
type Reporter interface {
	SetProgress(fraction float64, status string)
	SetResult(p *result.Payload)
}

// Hooks adapts two functions to Reporter. Nil functions are skipped.
type Hooks struct {
	Progress func(fraction float64, status string)
	Result   func(p *result.Payload)
}

// SetProgress implements Reporter.
func (h Hooks) SetProgress(fraction float64, status string) {
	if h.Progress != nil {
		h.Progress(fraction, status)
	}
}

// SetResult implements Reporter.
func (h Hooks) SetResult(p *result.Payload) {
	if h.Result != nil {
		h.Result(p)
	}
}

// progress is what engines see: a monotone view of a Reporter that only
// forwards SetProgress. Results travel back as return values.
type progress struct {
	out      Reporter
	lo, span float64
	last     *float64
}

func newProgress(out Reporter) *progress {
	last := -1.0

	return &progress{out: out, span: 1, last: &last}
}

// set maps fraction into the progress window and drops regressions.
func (p *progress) set(fraction float64, status string) {
	f := p.lo + p.span*fraction
	if f < *p.last {
		return
	}
	*p.last = f
	p.out.SetProgress(f, status)
}

// stage returns a view whose [0,1] covers [lo,hi] of p's window.
func (p *progress) stage(lo, hi float64) *progress {
	return &progress{
		out:  p.out,
		lo:   p.lo + p.span*lo,
		span: p.span * (hi - lo),
		last: p.last,
	}
}

package ui

import (
	"fmt"
	"io"
	"sync"
)

// Progress displays a running counter on a terminal stream.
// On non-terminals it stays silent until DoneWithMessage.
type Progress struct {
	w       io.Writer
	tty     bool
	message string
	total   int // 0 when unknown
	current int
	mu      sync.Mutex
}

// NewProgress creates a progress indicator on w. Pass total 0 when the number
// of steps is not known up front.
func NewProgress(w io.Writer, message string, total int) *Progress {
	return &Progress{
		w:       w,
		tty:     NewDisplayContext(w).IsTTY,
		message: message,
		total:   total,
	}
}

// Increment increments the progress by one.
func (p *Progress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	if p.tty {
		fmt.Fprintf(p.w, "\r%s %s", p.message, Muted.Render(p.counter()))
	}
}

// Current returns the number of completed steps.
func (p *Progress) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Progress) counter() string {
	if p.total > 0 {
		return fmt.Sprintf("(%d/%d)", p.current, p.total)
	}
	return fmt.Sprintf("(%d)", p.current)
}

// Done finishes the progress indicator.
func (p *Progress) Done() {
	if p.tty {
		fmt.Fprint(p.w, "\r\033[K") // Clear line
	}
}

// DoneWithMessage finishes the progress and prints a message.
func (p *Progress) DoneWithMessage(message string) {
	p.Done()
	fmt.Fprintln(p.w, message)
}

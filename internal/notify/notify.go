// Package notify implements the timed, self-clearing user notice channel.
package notify

import (
	"sync"
	"time"
)

// DefaultDelay is how long a notice stays visible without a replacement.
const DefaultDelay = 5 * time.Second

// Notifier holds at most one user-facing message at a time. Showing a new
// message replaces the current one and restarts the auto-clear countdown;
// there is no queue, the latest message wins.
type Notifier struct {
	mu       sync.Mutex
	msg      string
	timer    *time.Timer
	gen      uint64
	delay    time.Duration
	onChange func(string)
}

// New creates a notifier with the default auto-clear delay.
func New() *Notifier {
	return NewWithDelay(DefaultDelay)
}

// NewWithDelay creates a notifier with a custom delay (used by tests).
func NewWithDelay(delay time.Duration) *Notifier {
	return &Notifier{delay: delay}
}

// OnChange registers a callback invoked with the new message text whenever
// the visible message changes. An empty string means cleared.
func (n *Notifier) OnChange(fn func(string)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Show replaces the current message and restarts the auto-clear timer.
func (n *Notifier) Show(msg string) {
	n.mu.Lock()
	n.msg = msg
	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.timer = time.AfterFunc(n.delay, func() { n.clearExpired(gen) })
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(msg)
	}
}

// Clear hides the message immediately and cancels the pending auto-clear.
func (n *Notifier) Clear() {
	n.mu.Lock()
	n.gen++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	changed := n.msg != ""
	n.msg = ""
	fn := n.onChange
	n.mu.Unlock()

	if changed && fn != nil {
		fn("")
	}
}

// Message returns the currently visible message, empty when cleared.
func (n *Notifier) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.msg
}

// clearExpired runs when a countdown elapses. A timer that fires just as a
// newer Show or Clear takes the lock arrives with a stale generation and
// must not wipe the newer message.
func (n *Notifier) clearExpired(gen uint64) {
	n.mu.Lock()
	if gen != n.gen {
		n.mu.Unlock()
		return
	}
	n.msg = ""
	n.timer = nil
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn("")
	}
}

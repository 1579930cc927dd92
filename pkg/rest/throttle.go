package rest

import "time"

// DefaultReqsPerSec matches the Ensembl fair-use guideline of 15 requests
// per second.
const DefaultReqsPerSec = 15

// Throttle is a coarse burst-then-pause request limiter: up to ceiling
// calls go through back to back, then the caller is put to sleep for the
// remainder of the current one-second window before the counter resets.
// It is owned by a single client and mutated only by that client's
// sequential calls, so it carries no lock.
type Throttle struct {
	ceiling int
	count   int
	last    time.Time
}

// NewThrottle returns a throttle allowing ceiling requests per second.
// A non-positive ceiling falls back to DefaultReqsPerSec. The window is
// anchored at construction, so the very first burst is bounded too.
func NewThrottle(ceiling int) *Throttle {
	if ceiling <= 0 {
		ceiling = DefaultReqsPerSec
	}
	return &Throttle{
		ceiling: ceiling,
		last:    time.Now(),
	}
}

// Wait blocks until the next request may be sent, and accounts for it.
func (t *Throttle) Wait() {
	if t.count >= t.ceiling {
		if delta := time.Since(t.last); delta < time.Second {
			time.Sleep(time.Second - delta)
		}
		t.last = time.Now()
		t.count = 0
	}
	t.count++
}

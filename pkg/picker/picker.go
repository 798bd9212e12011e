// Package picker reveals a uniformly random watchlist item through a
// decelerating flicker: candidates flash at a decaying cadence for a fixed
// window, then the pre-drawn result settles.
package picker

import (
	"math/rand"
	"sync"
	"time"

	"github.com/cinepick/cinepick/pkg/models"
)

// State of a Picker. Idle is the resting state between runs.
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateSettled
)

// DefaultDuration is the total spin window.
const DefaultDuration = 2 * time.Second

const (
	baseDelay = 50 * time.Millisecond
	stepDelay = 10 * time.Millisecond
	minDelay  = 30 * time.Millisecond
)

// Event is one emission of a spin. Ticks carry a random flicker candidate;
// the final event carries the settled result.
type Event struct {
	Final bool
	Item  models.WatchlistItem
}

// Picker is the selection state machine. It operates purely on an
// in-memory snapshot and persists nothing.
type Picker struct {
	duration time.Duration
	events   chan Event

	stop     chan struct{}
	stopOnce sync.Once

	mu    sync.Mutex
	state State
}

// New creates an idle Picker. A non-positive duration falls back to
// DefaultDuration.
func New(duration time.Duration) *Picker {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Picker{
		duration: duration,
		events:   make(chan Event),
		stop:     make(chan struct{}),
	}
}

// Events is the stream of spin emissions.
func (p *Picker) Events() <-chan Event {
	return p.events
}

// State returns the current state.
func (p *Picker) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start begins a spin over a snapshot of items. It reports false, doing
// nothing, when items is empty or a spin is already running. The final
// result is drawn before the first flicker and revealed at settlement.
func (p *Picker) Start(items []models.WatchlistItem) bool {
	p.mu.Lock()
	if len(items) == 0 || p.state == StateSpinning {
		p.mu.Unlock()
		return false
	}
	p.state = StateSpinning
	p.mu.Unlock()

	snapshot := make([]models.WatchlistItem, len(items))
	copy(snapshot, items)
	final := snapshot[rand.Intn(len(snapshot))]

	go p.run(snapshot, final)
	return true
}

// Stop tears the picker down: pending ticks are cancelled and nothing is
// emitted afterwards. A stopped picker cannot be restarted.
func (p *Picker) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

func (p *Picker) run(items []models.WatchlistItem, final models.WatchlistItem) {
	start := time.Now()
	count := 0

	for {
		remaining := p.duration - time.Since(start)
		if remaining <= 0 {
			p.mu.Lock()
			p.state = StateSettled
			p.mu.Unlock()
			select {
			case p.events <- Event{Final: true, Item: final}:
			case <-p.stop:
			}
			return
		}

		candidate := items[rand.Intn(len(items))]
		select {
		case p.events <- Event{Item: candidate}:
		case <-p.stop:
			return
		}

		delay := baseDelay + time.Duration(count)*stepDelay
		if capped := remaining / 10; delay > capped {
			delay = capped
		}
		if delay < minDelay {
			delay = minDelay
		}
		count++

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-p.stop:
			timer.Stop()
			return
		}
	}
}

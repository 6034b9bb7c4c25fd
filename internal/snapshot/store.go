// Package snapshot keeps the latest payload of each polled feed. Payloads are
// replaced whole and never mutated, so a Snapshot can be read without locks.
package snapshot

import (
	"sync"
	"time"

	"GoldSentinel/internal/model"
)

// Feed names one polled endpoint.
type Feed string

const (
	FeedDaily        Feed = "daily"
	FeedRealtime     Feed = "realtime"
	FeedExchangeRate Feed = "exchange_rate"
	FeedExplanation  Feed = "explanation"
)

// Feeds lists every feed in polling order.
var Feeds = []Feed{FeedDaily, FeedRealtime, FeedExchangeRate, FeedExplanation}

// Snapshot is a consistent copy of the store at one instant.
type Snapshot struct {
	Daily        *model.DailyDataResponse
	Realtime     *model.RealtimePriceResponse
	ExchangeRate *model.ExchangeRateResponse
	Explanation  *model.PredictionExplanation

	Errors    map[Feed]error
	UpdatedAt map[Feed]time.Time
}

// Err returns the last fetch error of a feed, nil after a success.
func (s Snapshot) Err(f Feed) error {
	return s.Errors[f]
}

// Store is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	subs map[int]chan struct{}
	next int
	now  func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		snap: Snapshot{
			Errors:    make(map[Feed]error),
			UpdatedAt: make(map[Feed]time.Time),
		},
		subs: make(map[int]chan struct{}),
		now:  time.Now,
	}
}

// Snapshot returns a copy safe to hold across updates.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.snap
	out.Errors = make(map[Feed]error, len(s.snap.Errors))
	for k, v := range s.snap.Errors {
		out.Errors[k] = v
	}
	out.UpdatedAt = make(map[Feed]time.Time, len(s.snap.UpdatedAt))
	for k, v := range s.snap.UpdatedAt {
		out.UpdatedAt[k] = v
	}
	return out
}

func (s *Store) SetDaily(d *model.DailyDataResponse) {
	s.update(FeedDaily, func(snap *Snapshot) { snap.Daily = d })
}

func (s *Store) SetRealtime(r *model.RealtimePriceResponse) {
	s.update(FeedRealtime, func(snap *Snapshot) { snap.Realtime = r })
}

func (s *Store) SetExchangeRate(r *model.ExchangeRateResponse) {
	s.update(FeedExchangeRate, func(snap *Snapshot) { snap.ExchangeRate = r })
}

func (s *Store) SetExplanation(e *model.PredictionExplanation) {
	s.update(FeedExplanation, func(snap *Snapshot) { snap.Explanation = e })
}

// SetError records a failed fetch. The previous payload is kept.
func (s *Store) SetError(f Feed, err error) {
	s.mu.Lock()
	s.snap.Errors[f] = err
	s.mu.Unlock()
	s.notify()
}

func (s *Store) update(f Feed, apply func(*Snapshot)) {
	s.mu.Lock()
	apply(&s.snap)
	delete(s.snap.Errors, f)
	s.snap.UpdatedAt[f] = s.now()
	s.mu.Unlock()
	s.notify()
}

// Subscribe returns a channel that receives a signal after every change and
// a function that releases it. Signals coalesce when the reader is slow.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

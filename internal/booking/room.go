package booking

import (
	"strconv"
	"strings"
	"sync"
)

// SeatsPerRoom is the fixed number of seats in every room (N in spec.md).
const SeatsPerRoom = 20

// eol is the two-byte line terminator used by every rendered listing.
const eol = "\r\n"

// Result is the outcome of a booking attempt.
type Result int

const (
	// Accepted means every requested seat was booked.
	Accepted Result = iota
	// NotAvailable means at least one requested seat was already booked.
	NotAvailable
	// Invalid means at least one requested seat index was out of range.
	// Invalid dominates NotAvailable when both conditions hold.
	Invalid
)

func (r Result) String() string {
	switch r {
	case Accepted:
		return "ACCEPTED"
	case NotAvailable:
		return "NOT_AVAILABLE"
	case Invalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Room holds the availability bitmap for one (movie, theater) pair: a fixed
// array of SeatsPerRoom booleans and a cached rendered listing of the seats
// currently available. Room has its own reader/writer lock so that bookings
// on different rooms never block each other.
type Room struct {
	mu        sync.RWMutex
	available [SeatsPerRoom]bool
	cache     string
}

// NewRoom returns a Room with every seat available.
func NewRoom() *Room {
	r := &Room{}
	for i := range r.available {
		r.available[i] = true
	}
	r.rebuildCache()
	return r
}

// Available returns the current cached availability listing under the
// room's read lock.
func (r *Room) Available() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cache
}

// Book evaluates seats against the room's availability under the room's
// write lock. Policy, in order:
//  1. Any seat >= SeatsPerRoom -> Invalid, no state change.
//  2. Any requested seat already unavailable -> NotAvailable, no state
//     change.
//  3. Otherwise all requested seats are marked unavailable, the cache is
//     rebuilt, and Accepted is returned.
//
// An empty seat set trivially returns Accepted and is a no-op.
func (r *Room) Book(seats map[int]struct{}) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	for seat := range seats {
		if seat < 0 || seat >= SeatsPerRoom {
			return Invalid
		}
	}
	for seat := range seats {
		if !r.available[seat] {
			return NotAvailable
		}
	}
	if len(seats) == 0 {
		return Accepted
	}
	for seat := range seats {
		r.available[seat] = false
	}
	r.rebuildCache()
	return Accepted
}

// rebuildCache must be called with the write lock already held. It emits
// ascending comma-separated indices still available, terminated by eol; a
// room with no seats left renders as eol alone.
func (r *Room) rebuildCache() {
	var b strings.Builder
	first := true
	for idx, avail := range r.available {
		if !avail {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(strconv.Itoa(idx))
	}
	b.WriteString(eol)
	r.cache = b.String()
}

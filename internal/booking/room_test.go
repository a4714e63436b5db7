package booking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seatSet(seats ...int) map[int]struct{} {
	m := make(map[int]struct{}, len(seats))
	for _, s := range seats {
		m[s] = struct{}{}
	}
	return m
}

func TestNewRoomAllSeatsAvailable(t *testing.T) {
	r := NewRoom()
	assert.Equal(t, "0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19\r\n", r.Available())
}

func TestRoomBookAccepted(t *testing.T) {
	r := NewRoom()
	res := r.Book(seatSet(0, 1, 2))
	assert.Equal(t, Accepted, res)
	assert.Equal(t, "3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19\r\n", r.Available())
}

func TestRoomBookNotAvailable(t *testing.T) {
	r := NewRoom()
	require := assert.New(t)
	require.Equal(Accepted, r.Book(seatSet(0, 1, 2, 3, 4)))
	before := r.Available()

	res := r.Book(seatSet(3, 4))
	require.Equal(NotAvailable, res)
	require.Equal(before, r.Available(), "state must be unchanged on NOT_AVAILABLE")
}

func TestRoomBookInvalidOutOfRange(t *testing.T) {
	r := NewRoom()
	before := r.Available()

	res := r.Book(seatSet(25, 26))
	assert.Equal(t, Invalid, res)
	assert.Equal(t, before, r.Available())
}

func TestRoomBookInvalidDominatesNotAvailable(t *testing.T) {
	r := NewRoom()
	assert.Equal(t, Accepted, r.Book(seatSet(0)))

	// 0 is already booked (would be NOT_AVAILABLE) and 99 is out of range
	// (INVALID). INVALID must win.
	res := r.Book(seatSet(0, 99))
	assert.Equal(t, Invalid, res)
}

func TestRoomBookEmptySetAccepts(t *testing.T) {
	r := NewRoom()
	before := r.Available()
	res := r.Book(seatSet())
	assert.Equal(t, Accepted, res)
	assert.Equal(t, before, r.Available())
}

func TestRoomBookAllSeatsRendersEOLAlone(t *testing.T) {
	r := NewRoom()
	all := make(map[int]struct{}, SeatsPerRoom)
	for i := 0; i < SeatsPerRoom; i++ {
		all[i] = struct{}{}
	}
	res := r.Book(all)
	assert.Equal(t, Accepted, res)
	assert.Equal(t, "\r\n", r.Available())
}

// TestRoomConcurrentDisjointBookingsSerializeCorrectly exercises property
// P3/P7: many goroutines booking disjoint single seats in the same room
// must all succeed and leave exactly those seats booked, regardless of
// interleaving.
func TestRoomConcurrentDisjointBookingsSerializeCorrectly(t *testing.T) {
	r := NewRoom()
	var wg sync.WaitGroup
	results := make([]Result, SeatsPerRoom)
	for i := 0; i < SeatsPerRoom; i++ {
		wg.Add(1)
		go func(seat int) {
			defer wg.Done()
			results[seat] = r.Book(seatSet(seat))
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		assert.Equal(t, Accepted, res)
	}
	assert.Equal(t, "\r\n", r.Available())
}

// TestRoomConcurrentOverlappingBookingsExactlyOneWins exercises property
// P7: of N goroutines racing for the same single seat, exactly one must
// observe ACCEPTED and the rest NOT_AVAILABLE.
func TestRoomConcurrentOverlappingBookingsExactlyOneWins(t *testing.T) {
	r := NewRoom()
	const attempts = 50
	var wg sync.WaitGroup
	results := make([]Result, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = r.Book(seatSet(7))
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, res := range results {
		if res == Accepted {
			accepted++
		} else {
			assert.Equal(t, NotAvailable, res)
		}
	}
	assert.Equal(t, 1, accepted)
}
